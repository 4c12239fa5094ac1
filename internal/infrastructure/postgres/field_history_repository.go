package postgres

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.FieldHistoryRepository = (*FieldHistoryRepo)(nil)

// FieldHistoryRepo historial de cambios de atributos.
type FieldHistoryRepo struct {
	q Querier
}

// NewFieldHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFieldHistoryRepository(q Querier) *FieldHistoryRepo {
	return &FieldHistoryRepo{q: q}
}

func (r *FieldHistoryRepo) Append(ctx context.Context, e *entity.FieldHistory) error {
	query := `
		INSERT INTO spare_parts_field_history (id, part_number, field_name, old_value, new_value, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, clock_timestamp())
		RETURNING seq, created_at`
	err := r.q.QueryRow(ctx, query, e.ID, e.PartNumber, e.FieldName, e.OldValue, e.NewValue, e.PerformedBy).
		Scan(&e.Seq, &e.CreatedAt)
	if err != nil {
		return wrapErr("insert field history", err)
	}
	return nil
}

func (r *FieldHistoryRepo) ListByPart(ctx context.Context, partNumber string) ([]*entity.FieldHistory, error) {
	query := `
		SELECT id, part_number, field_name, old_value, new_value, performed_by, created_at, seq
		FROM spare_parts_field_history
		WHERE part_number = $1
		ORDER BY created_at DESC, seq DESC`
	rows, err := r.q.Query(ctx, query, partNumber)
	if err != nil {
		return nil, wrapErr("list field history", err)
	}
	defer rows.Close()
	out := make([]*entity.FieldHistory, 0)
	for rows.Next() {
		var h entity.FieldHistory
		if err := rows.Scan(&h.ID, &h.PartNumber, &h.FieldName, &h.OldValue, &h.NewValue, &h.PerformedBy, &h.CreatedAt, &h.Seq); err != nil {
			return nil, wrapErr("scan field history", err)
		}
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list field history", err)
	}
	return out, nil
}
