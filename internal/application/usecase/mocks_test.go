package usecase_test

import (
	"context"
	"io"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

type mockRegistrar struct{ mock.Mock }

func (m *mockRegistrar) RegisterPart(ctx context.Context, in dto.SparePartRequest) (*dto.SparePartResponse, error) {
	args := m.Called(ctx, in)
	resp, _ := args.Get(0).(*dto.SparePartResponse)
	return resp, args.Error(1)
}

type mockReader struct{ mock.Mock }

func (m *mockReader) ReadParts(r io.Reader, opts ports.ReadOptions) ([]ports.ParsedRow, error) {
	args := m.Called(r, opts)
	rows, _ := args.Get(0).([]ports.ParsedRow)
	return rows, args.Error(1)
}

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader, metadata map[string]string) (string, error) {
	args := m.Called(ctx, key, contentType, body, metadata)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Delete(ctx context.Context, imageURL string) error {
	return m.Called(ctx, imageURL).Error(0)
}

type mockLabelPDF struct{ mock.Mock }

func (m *mockLabelPDF) GenerateLabel(part *entity.SparePart) ([]byte, error) {
	args := m.Called(part)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockLabelPDF) GenerateSheet(parts []*entity.SparePart) ([]byte, error) {
	args := m.Called(parts)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type mockSheetWriter struct{ mock.Mock }

func (m *mockSheetWriter) WriteParts(w io.Writer, parts []*entity.SparePart) error {
	return m.Called(w, parts).Error(0)
}
