package repository

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// SparePartRepository define el puerto de persistencia para SparePart (DIP).
// La columna quantity solo la modifica UpdateQuantity; Upsert nunca la toca en filas existentes
// y crea las nuevas con cantidad 0 (el servicio de mutación registra 0 -> inicial).
type SparePartRepository interface {
	List(ctx context.Context) ([]*entity.SparePart, error)
	ListByArticleNumbers(ctx context.Context, articleNumbers []string) ([]*entity.SparePart, error)
	GetByArticleNumber(ctx context.Context, articleNumber string) (*entity.SparePart, error)
	// GetForUpdate bloquea la fila (y el número de artículo aunque aún no exista) hasta el fin de la tx.
	GetForUpdate(ctx context.Context, articleNumber string) (*entity.SparePart, error)
	Upsert(ctx context.Context, part *entity.SparePart) error
	UpdateQuantity(ctx context.Context, articleNumber string, quantity int) error
	Delete(ctx context.Context, articleNumber string) error
}
