package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

// QuantityUseCase único camino para cambiar la cantidad de un repuesto.
// Cada operación corre en una transacción con la fila bloqueada (advisory lock + SELECT FOR UPDATE):
// leer cantidad actual, persistir la nueva y anexar una entrada al historial.
type QuantityUseCase struct {
	txRunner TxRunner
	defaults inventory.LedgerDefaults
	observer LedgerObserver
	log      *logger.Logger
	now      func() time.Time
}

// NewQuantityUseCase construye el caso de uso. observer y log pueden ser nil.
func NewQuantityUseCase(
	txRunner TxRunner,
	defaults inventory.LedgerDefaults,
	observer LedgerObserver,
	log *logger.Logger,
) *QuantityUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &QuantityUseCase{
		txRunner: txRunner,
		defaults: defaults,
		observer: observer,
		log:      log.Component("ledger"),
		now:      time.Now,
	}
}

// SetClock reemplaza el reloj de CreatedAt (tests).
func (uc *QuantityUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// QuantityChangeInput cambio absoluto de cantidad.
type QuantityChangeInput struct {
	ArticleNumber string
	NewQuantity   int
	PerformedBy   string
	Comment       string
}

// WithdrawInput retiro relativo (escaneo QR).
type WithdrawInput struct {
	ArticleNumber string
	Amount        int
	PerformedBy   string
	Comment       string
}

// ApplyQuantityChange fija la cantidad del repuesto y registra exactamente una entrada en el historial.
// No es idempotente: dos llamadas iguales dejan dos entradas.
func (uc *QuantityUseCase) ApplyQuantityChange(ctx context.Context, input QuantityChangeInput) (*dto.PartHistoryResponse, error) {
	articleNumber := strings.TrimSpace(input.ArticleNumber)
	if articleNumber == "" {
		return nil, domain.Invalid("articleNumber", "es obligatorio")
	}
	if err := inventory.ValidateQuantity(input.NewQuantity); err != nil {
		return nil, err
	}

	var entry *entity.PartHistory
	err := uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		historyRepo repository.PartHistoryRepository,
		_ repository.FieldHistoryRepository,
	) error {
		part, err := partRepo.GetForUpdate(ctx, articleNumber)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		entry, err = uc.mutate(ctx, partRepo, historyRepo, articleNumber, part.Quantity, input.NewQuantity,
			uc.defaults.ActorOr(input.PerformedBy), uc.defaults.CommentOr(input.Comment))
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.committed(entry)
	return dto.NewPartHistoryResponse(entry), nil
}

// Withdraw resta amount unidades dentro de la misma transacción bloqueada; el resultado nunca es negativo.
func (uc *QuantityUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*dto.PartHistoryResponse, error) {
	articleNumber := strings.TrimSpace(input.ArticleNumber)
	if articleNumber == "" {
		return nil, domain.Invalid("articleNumber", "es obligatorio")
	}
	if input.Amount <= 0 {
		return nil, domain.Invalid("amount", "debe ser mayor que 0")
	}

	var entry *entity.PartHistory
	err := uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		historyRepo repository.PartHistoryRepository,
		_ repository.FieldHistoryRepository,
	) error {
		part, err := partRepo.GetForUpdate(ctx, articleNumber)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		newQty := inventory.ClampWithdrawal(part.Quantity, input.Amount)
		entry, err = uc.mutate(ctx, partRepo, historyRepo, articleNumber, part.Quantity, newQty,
			uc.defaults.ActorOr(input.PerformedBy), uc.defaults.CommentOr(input.Comment))
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.committed(entry)
	return dto.NewPartHistoryResponse(entry), nil
}

// RegisterPart alta o sobrescritura de un repuesto (upsert por número de artículo).
// Alta: entrada sintética 0 -> cantidad. Sobrescritura: cantidad guardada -> nueva, más un registro
// en el historial de campos por cada atributo modificado.
func (uc *QuantityUseCase) RegisterPart(ctx context.Context, in dto.SparePartRequest) (*dto.SparePartResponse, error) {
	part := in.ToSparePart()
	if err := inventory.NormalizePart(part); err != nil {
		return nil, err
	}
	actor := uc.defaults.CreatorActor(part.AddedBy)
	comment := uc.defaults.CommentOr(part.Comment)

	var (
		entry  *entity.PartHistory
		stored *entity.SparePart
	)
	err := uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		historyRepo repository.PartHistoryRepository,
		fieldRepo repository.FieldHistoryRepository,
	) error {
		existing, err := partRepo.GetForUpdate(ctx, part.InternalArticleNumber)
		if err != nil {
			return err
		}
		if err := partRepo.Upsert(ctx, part); err != nil {
			return err
		}

		prevQty := 0
		if existing != nil {
			prevQty = existing.Quantity
			now := uc.now()
			for _, ch := range inventory.DiffFields(existing, part) {
				fh := &entity.FieldHistory{
					ID:          uuid.New().String(),
					PartNumber:  part.InternalArticleNumber,
					FieldName:   ch.Field,
					OldValue:    ch.OldValue,
					NewValue:    ch.NewValue,
					PerformedBy: actor,
					CreatedAt:   now,
				}
				if err := fieldRepo.Append(ctx, fh); err != nil {
					return err
				}
			}
		}

		entry, err = uc.mutate(ctx, partRepo, historyRepo, part.InternalArticleNumber, prevQty, part.Quantity, actor, comment)
		if err != nil {
			return err
		}
		stored, err = partRepo.GetByArticleNumber(ctx, part.InternalArticleNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.committed(entry)
	if stored == nil {
		stored = part
	}
	return dto.NewSparePartResponse(stored), nil
}

// mutate persiste la cantidad y anexa la entrada; debe llamarse dentro de la tx con la fila bloqueada.
func (uc *QuantityUseCase) mutate(
	ctx context.Context,
	partRepo repository.SparePartRepository,
	historyRepo repository.PartHistoryRepository,
	articleNumber string,
	prevQty, newQty int,
	performedBy, comment string,
) (*entity.PartHistory, error) {
	if err := partRepo.UpdateQuantity(ctx, articleNumber, newQty); err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	entry := inventory.NewHistoryEntry(articleNumber, prevQty, newQty, performedBy, comment, uc.now())
	if err := historyRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	return entry, nil
}

func (uc *QuantityUseCase) committed(entry *entity.PartHistory) {
	if entry == nil {
		return
	}
	uc.log.Info().
		Str("article", entry.PartNumber).
		Int("previous", entry.PreviousQuantity).
		Int("new", entry.NewQuantity).
		Str("action_type", entry.ActionType).
		Str("performed_by", entry.PerformedBy).
		Msg("cambio de cantidad registrado")
	if uc.observer != nil {
		uc.observer.EntryAppended(entry)
	}
}
