package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportParts_SecuencialConHistorial(t *testing.T) {
	store := memory.NewStore()
	quc := inventory.NewQuantityUseCase(store, domaininv.DefaultLedgerDefaults(), nil, nil)
	uc := usecase.NewImportUseCase(quc, nil, nil)
	ctx := context.Background()

	res, err := uc.ImportParts(ctx, []dto.SparePartRequest{
		{InternalArticleNumber: "P1", Quantity: 5},
		{InternalArticleNumber: "P2", Quantity: 1},
		{InternalArticleNumber: "P1", Quantity: 8},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Nil(t, res.FailedAt)
	assert.Empty(t, res.RowErrors)

	p1, err := store.Parts().GetByArticleNumber(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 8, p1.Quantity)
	history, err := store.History().ListByPart(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestImportParts_FilaInvalidaSeSaltaYSeInforma(t *testing.T) {
	store := memory.NewStore()
	quc := inventory.NewQuantityUseCase(store, domaininv.DefaultLedgerDefaults(), nil, nil)
	uc := usecase.NewImportUseCase(quc, nil, nil)

	res, err := uc.ImportParts(context.Background(), []dto.SparePartRequest{
		{InternalArticleNumber: "P1", Quantity: 5},
		{InternalArticleNumber: "P2", Quantity: -3},
		{InternalArticleNumber: "P3", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.RowErrors, 1)
	assert.Equal(t, 2, res.RowErrors[0].Row)
	assert.Equal(t, "P2", res.RowErrors[0].ArticleNumber)
}

func TestImportParts_AplicaLasReglasDelDTO(t *testing.T) {
	reg := &mockRegistrar{}
	reg.On("RegisterPart", mock.Anything, mock.MatchedBy(func(in dto.SparePartRequest) bool { return in.InternalArticleNumber == "P1" })).
		Return(&dto.SparePartResponse{}, nil).Once()

	uc := usecase.NewImportUseCase(reg, nil, nil)
	res, err := uc.ImportParts(context.Background(), []dto.SparePartRequest{
		{InternalArticleNumber: "P1"},
		{InternalArticleNumber: "P2", ImageURL: "https://cdn.test/" + strings.Repeat("a", 3000)},
		{InternalArticleNumber: strings.Repeat("X", 101)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.RowErrors, 2)
	assert.Equal(t, 2, res.RowErrors[0].Row)
	assert.Equal(t, "imageUrl", res.RowErrors[0].Column)
	assert.Equal(t, "internalArticleNumber", res.RowErrors[1].Column)
	reg.AssertExpectations(t)
	reg.AssertNumberOfCalls(t, "RegisterPart", 1)
}

func TestImportParts_ErrorDeAlmacenamientoDetieneYConservaAnteriores(t *testing.T) {
	reg := &mockRegistrar{}
	boom := errors.New("conexión perdida")
	reg.On("RegisterPart", mock.Anything, mock.MatchedBy(func(in dto.SparePartRequest) bool { return in.InternalArticleNumber == "P1" })).
		Return(&dto.SparePartResponse{}, nil).Once()
	reg.On("RegisterPart", mock.Anything, mock.MatchedBy(func(in dto.SparePartRequest) bool { return in.InternalArticleNumber == "P2" })).
		Return(nil, boom).Once()

	uc := usecase.NewImportUseCase(reg, nil, nil)
	res, err := uc.ImportParts(context.Background(), []dto.SparePartRequest{
		{InternalArticleNumber: "P1"}, {InternalArticleNumber: "P2"}, {InternalArticleNumber: "P3"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, res.Imported)
	require.NotNil(t, res.FailedAt)
	assert.Equal(t, 2, *res.FailedAt)
	assert.Equal(t, boom.Error(), res.Error)
	reg.AssertExpectations(t)
	reg.AssertNumberOfCalls(t, "RegisterPart", 2)
}

func TestImportFile_CombinaErroresDeParseoYDeRegistro(t *testing.T) {
	reader := &mockReader{}
	reader.On("ReadParts", mock.Anything, ports.ReadOptions{Format: ports.FormatCSV}).Return([]ports.ParsedRow{
		{Row: 2, Part: &entity.SparePart{InternalArticleNumber: "P1", Quantity: 3}},
		{Row: 3, Err: &ports.RowError{Row: 3, Column: "Antal", Message: "no es un número"}},
		{Row: 4, Part: &entity.SparePart{InternalArticleNumber: "P2", Quantity: 1}},
	}, nil)

	store := memory.NewStore()
	quc := inventory.NewQuantityUseCase(store, domaininv.DefaultLedgerDefaults(), nil, nil)
	uc := usecase.NewImportUseCase(quc, reader, nil)

	res, err := uc.ImportFile(context.Background(), strings.NewReader("x"), ports.ReadOptions{Format: ports.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.RowErrors, 1)
	assert.Equal(t, 3, res.RowErrors[0].Row)
	assert.Equal(t, "Antal", res.RowErrors[0].Column)
}

func TestImportFile_ErrorDeLectura(t *testing.T) {
	reader := &mockReader{}
	reader.On("ReadParts", mock.Anything, mock.Anything).Return(nil, domain.Invalid("file", "no es una planilla"))
	uc := usecase.NewImportUseCase(&mockRegistrar{}, reader, nil)

	_, err := uc.ImportFile(context.Background(), strings.NewReader(""), ports.ReadOptions{Format: ports.FormatXLSX})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestImportParts_ContextoCancelado(t *testing.T) {
	reg := &mockRegistrar{}
	uc := usecase.NewImportUseCase(reg, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := uc.ImportParts(ctx, []dto.SparePartRequest{{InternalArticleNumber: "P1"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Imported)
	reg.AssertNotCalled(t, "RegisterPart", mock.Anything, mock.Anything)
}
