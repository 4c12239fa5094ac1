package postgres

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.PartHistoryRepository = (*PartHistoryRepo)(nil)

// PartHistoryRepo historial de cantidades (append-only; un trigger rechaza UPDATE/DELETE).
type PartHistoryRepo struct {
	q Querier
}

// NewPartHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartHistoryRepository(q Querier) *PartHistoryRepo {
	return &PartHistoryRepo{q: q}
}

// Append inserta la entrada; seq y created_at los asigna la BD y se copian en entry.
func (r *PartHistoryRepo) Append(ctx context.Context, e *entity.PartHistory) error {
	query := `
		INSERT INTO spare_parts_history (id, part_number, action_type, quantity, previous_quantity, new_quantity, performed_by, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, clock_timestamp())
		RETURNING seq, created_at`
	err := r.q.QueryRow(ctx, query,
		e.ID, e.PartNumber, e.ActionType, e.Quantity, e.PreviousQuantity, e.NewQuantity, e.PerformedBy, e.Comment,
	).Scan(&e.Seq, &e.CreatedAt)
	if err != nil {
		return wrapErr("insert part history", err)
	}
	return nil
}

// ListByPart más reciente primero; empates por orden de inserción.
func (r *PartHistoryRepo) ListByPart(ctx context.Context, partNumber string) ([]*entity.PartHistory, error) {
	query := `
		SELECT id, part_number, action_type, quantity, previous_quantity, new_quantity, performed_by, comment, created_at, seq
		FROM spare_parts_history
		WHERE part_number = $1
		ORDER BY created_at DESC, seq DESC`
	rows, err := r.q.Query(ctx, query, partNumber)
	if err != nil {
		return nil, wrapErr("list part history", err)
	}
	defer rows.Close()
	out := make([]*entity.PartHistory, 0)
	for rows.Next() {
		var h entity.PartHistory
		if err := rows.Scan(&h.ID, &h.PartNumber, &h.ActionType, &h.Quantity, &h.PreviousQuantity, &h.NewQuantity,
			&h.PerformedBy, &h.Comment, &h.CreatedAt, &h.Seq); err != nil {
			return nil, wrapErr("scan part history", err)
		}
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list part history", err)
	}
	return out, nil
}
