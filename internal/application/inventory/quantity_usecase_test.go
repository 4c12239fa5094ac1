package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

type recordingObserver struct {
	mu      sync.Mutex
	entries []*entity.PartHistory
}

func (o *recordingObserver) EntryAppended(e *entity.PartHistory) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = append(o.entries, e)
}

// failingHistoryRunner envuelve el TxRunner y hace fallar el Append del historial.
type failingHistoryRunner struct {
	inner inventory.TxRunner
	err   error
}

func (f failingHistoryRunner) Run(ctx context.Context, fn func(
	repository.SparePartRepository, repository.PartHistoryRepository, repository.FieldHistoryRepository,
) error) error {
	return f.inner.Run(ctx, func(p repository.SparePartRepository, _ repository.PartHistoryRepository, fr repository.FieldHistoryRepository) error {
		return fn(p, failingHistory{f.err}, fr)
	})
}

type failingHistory struct{ err error }

func (f failingHistory) Append(context.Context, *entity.PartHistory) error { return f.err }
func (f failingHistory) ListByPart(context.Context, string) ([]*entity.PartHistory, error) {
	return nil, f.err
}

func newTestUseCase(t *testing.T) (*inventory.QuantityUseCase, *inventory.HistoryUseCase, *memory.Store, *recordingObserver) {
	t.Helper()
	store := memory.NewStore()
	obs := &recordingObserver{}
	quc := inventory.NewQuantityUseCase(store, domaininv.DefaultLedgerDefaults(), obs, nil)
	huc := inventory.NewHistoryUseCase(store.History(), store.FieldHistory())
	return quc, huc, store, obs
}

func registerPart(t *testing.T, uc *inventory.QuantityUseCase, article string, qty int) {
	t.Helper()
	_, err := uc.RegisterPart(context.Background(), dto.SparePartRequest{
		InternalArticleNumber: article,
		Name:                  "Kullager 6204",
		Quantity:              qty,
	})
	require.NoError(t, err)
}

// ─── Escenarios ───────────────────────────────────────────────────────────────

func TestRegisterPart_AltaCreaEntradaSintetica(t *testing.T) {
	quc, huc, _, obs := newTestUseCase(t)
	ctx := context.Background()

	resp, err := quc.RegisterPart(ctx, dto.SparePartRequest{InternalArticleNumber: "P1", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Quantity)
	assert.Equal(t, entity.DefaultStoragePriority, resp.StoragePriority)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 0, history[0].PreviousQuantity)
	assert.Equal(t, 10, history[0].NewQuantity)
	assert.Equal(t, 0, history[0].Quantity)
	assert.Equal(t, entity.ActionTypeAddition, history[0].ActionType)
	assert.Equal(t, "System", history[0].PerformedBy)
	assert.Equal(t, "Ingen kommentar", history[0].Comment)
	assert.Len(t, obs.entries, 1)
}

func TestRegisterPart_ActorDelCreador(t *testing.T) {
	quc, huc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := quc.RegisterPart(ctx, dto.SparePartRequest{
		InternalArticleNumber: "P1", Quantity: 3, AddedBy: "Bob", Comment: "ny leverans",
	})
	require.NoError(t, err)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Användare Bob", history[0].PerformedBy)
	assert.Equal(t, "ny leverans", history[0].Comment)
}

func TestApplyQuantityChange_Retiro(t *testing.T) {
	quc, huc, store, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 10)

	entry, err := quc.ApplyQuantityChange(ctx, inventory.QuantityChangeInput{
		ArticleNumber: "P1", NewQuantity: 4, PerformedBy: "Alice", Comment: "used for repair",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionTypeWithdrawal, entry.ActionType)

	part, err := store.Parts().GetByArticleNumber(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 4, part.Quantity)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	top := history[0]
	assert.Equal(t, 10, top.PreviousQuantity)
	assert.Equal(t, 4, top.NewQuantity)
	assert.Equal(t, entity.ActionTypeWithdrawal, top.ActionType)
	assert.Equal(t, "Alice", top.PerformedBy)
	assert.Equal(t, "used for repair", top.Comment)
}

func TestApplyQuantityChange_ValorIgualEsAdditionConDefaults(t *testing.T) {
	quc, huc, _, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 4)

	_, err := quc.ApplyQuantityChange(ctx, inventory.QuantityChangeInput{ArticleNumber: "P1", NewQuantity: 4})
	require.NoError(t, err)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.ActionTypeAddition, history[0].ActionType, "cambio sin diferencia se registra como ADDITION")
	assert.Equal(t, "System", history[0].PerformedBy)
	assert.Equal(t, "Ingen kommentar", history[0].Comment)
}

func TestApplyQuantityChange_ArticuloDesconocido(t *testing.T) {
	quc, huc, store, obs := newTestUseCase(t)
	ctx := context.Background()

	_, err := quc.ApplyQuantityChange(ctx, inventory.QuantityChangeInput{ArticleNumber: "UNKNOWN", NewQuantity: 5, PerformedBy: "Bob"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	part, err := store.Parts().GetByArticleNumber(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, part)
	history, err := huc.GetHistory(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Empty(t, obs.entries)
}

func TestApplyQuantityChange_NegativoRechazado(t *testing.T) {
	quc, huc, _, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 2)

	_, err := quc.ApplyQuantityChange(ctx, inventory.QuantityChangeInput{ArticleNumber: "P1", NewQuantity: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestApplyQuantityChange_NoEsIdempotente(t *testing.T) {
	quc, huc, _, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 10)

	in := inventory.QuantityChangeInput{ArticleNumber: "P1", NewQuantity: 7, PerformedBy: "Alice"}
	_, err := quc.ApplyQuantityChange(ctx, in)
	require.NoError(t, err)
	_, err = quc.ApplyQuantityChange(ctx, in)
	require.NoError(t, err)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entity.ActionTypeAddition, history[0].ActionType)
	assert.Equal(t, entity.ActionTypeWithdrawal, history[1].ActionType)
}

func TestImportDosVecesMismoArticulo(t *testing.T) {
	quc, huc, store, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 5)
	registerPart(t, quc, "P1", 8)

	part, err := store.Parts().GetByArticleNumber(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 8, part.Quantity)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].PreviousQuantity, "la sobrescritura parte de la cantidad guardada")
	assert.Equal(t, 8, history[0].NewQuantity)
	assert.Equal(t, 0, history[1].PreviousQuantity)
}

func TestRegisterPart_SobrescrituraRegistraCambiosDeCampos(t *testing.T) {
	quc, huc, _, _ := newTestUseCase(t)
	ctx := context.Background()
	_, err := quc.RegisterPart(ctx, dto.SparePartRequest{
		InternalArticleNumber: "P1", Name: "Lager", Location: "A1", Quantity: 1, Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	_, err = quc.RegisterPart(ctx, dto.SparePartRequest{
		InternalArticleNumber: "P1", Name: "Lager", Location: "B2", Quantity: 1, Price: decimal.RequireFromString("10"), AddedBy: "Eva",
	})
	require.NoError(t, err)

	fields, err := huc.GetFieldHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	got := map[string]dto.FieldHistoryResponse{}
	for _, f := range fields {
		got[f.FieldName] = f
	}
	assert.Equal(t, "A1", got["location"].OldValue)
	assert.Equal(t, "B2", got["location"].NewValue)
	assert.Equal(t, "Eva", got["addedBy"].NewValue)
	assert.Equal(t, "Användare Eva", got["location"].PerformedBy)
}

func TestRegisterPart_Invalido(t *testing.T) {
	quc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := quc.RegisterPart(ctx, dto.SparePartRequest{InternalArticleNumber: "   "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = quc.RegisterPart(ctx, dto.SparePartRequest{InternalArticleNumber: "P1", StoragePriority: 9})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestApplyQuantityChange_FalloDelHistorialRevierteCantidad(t *testing.T) {
	store := memory.NewStore()
	ok := inventory.NewQuantityUseCase(store, domaininv.DefaultLedgerDefaults(), nil, nil)
	registerPart(t, ok, "P1", 10)

	boom := errors.New("disk full")
	broken := inventory.NewQuantityUseCase(failingHistoryRunner{inner: store, err: boom}, domaininv.DefaultLedgerDefaults(), nil, nil)
	_, err := broken.ApplyQuantityChange(context.Background(), inventory.QuantityChangeInput{ArticleNumber: "P1", NewQuantity: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	part, err := store.Parts().GetByArticleNumber(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, 10, part.Quantity, "cantidad e historial no pueden divergir")
}

func TestWithdraw_NuncaBajaDeCero(t *testing.T) {
	quc, huc, store, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 3)

	entry, err := quc.Withdraw(ctx, inventory.WithdrawInput{ArticleNumber: "P1", Amount: 5, PerformedBy: "QR"})
	require.NoError(t, err)
	assert.Equal(t, 3, entry.PreviousQuantity)
	assert.Equal(t, 0, entry.NewQuantity)
	assert.Equal(t, entity.ActionTypeWithdrawal, entry.ActionType)

	part, err := store.Parts().GetByArticleNumber(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 0, part.Quantity)

	_, err = quc.Withdraw(ctx, inventory.WithdrawInput{ArticleNumber: "P1", Amount: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestWithdraw_ConcurrenteSerializaPorArticulo(t *testing.T) {
	quc, huc, store, _ := newTestUseCase(t)
	ctx := context.Background()
	registerPart(t, quc, "P1", 40)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := quc.Withdraw(ctx, inventory.WithdrawInput{ArticleNumber: "P1", Amount: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	part, err := store.Parts().GetByArticleNumber(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 0, part.Quantity)

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 41)
	// cada entrada parte del valor confirmado por la anterior
	for i := 0; i < len(history)-1; i++ {
		assert.Equal(t, history[i+1].NewQuantity, history[i].PreviousQuantity)
	}
	assert.Equal(t, part.Quantity, history[0].NewQuantity)
}

func TestGetHistory_OrdenDescendenteConEmpates(t *testing.T) {
	store := memory.NewStore()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return fixed })
	quc := inventory.NewQuantityUseCase(store, domaininv.DefaultLedgerDefaults(), nil, nil)
	quc.SetClock(func() time.Time { return fixed })
	huc := inventory.NewHistoryUseCase(store.History(), store.FieldHistory())
	ctx := context.Background()

	registerPart(t, quc, "P1", 1)
	for _, q := range []int{2, 3, 4} {
		_, err := quc.ApplyQuantityChange(ctx, inventory.QuantityChangeInput{ArticleNumber: "P1", NewQuantity: q})
		require.NoError(t, err)
	}

	history, err := huc.GetHistory(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, []int{4, 3, 2, 1}, []int{history[0].NewQuantity, history[1].NewQuantity, history[2].NewQuantity, history[3].NewQuantity})
}

func TestGetHistory_ArticuloVacio(t *testing.T) {
	_, huc, _, _ := newTestUseCase(t)
	_, err := huc.GetHistory(context.Background(), " ")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
