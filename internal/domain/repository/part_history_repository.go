package repository

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// PartHistoryRepository historial de cantidades: solo inserción y lectura.
type PartHistoryRepository interface {
	Append(ctx context.Context, entry *entity.PartHistory) error
	// ListByPart devuelve las entradas de más reciente a más antigua.
	ListByPart(ctx context.Context, partNumber string) ([]*entity.PartHistory, error)
}

// FieldHistoryRepository historial de cambios de atributos: solo inserción y lectura.
type FieldHistoryRepository interface {
	Append(ctx context.Context, entry *entity.FieldHistory) error
	ListByPart(ctx context.Context, partNumber string) ([]*entity.FieldHistory, error)
}
