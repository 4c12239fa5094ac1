package inventory

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que cantidad del repuesto e historial nunca diverjan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.SparePartRepository,
		historyRepo repository.PartHistoryRepository,
		fieldRepo repository.FieldHistoryRepository,
	) error) error
}

// LedgerObserver recibe cada entrada confirmada del historial (métricas). Se invoca tras el Commit.
type LedgerObserver interface {
	EntryAppended(entry *entity.PartHistory)
}
