package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo fila única (id = 1) de app_settings.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get(ctx context.Context) (*entity.AppSettings, error) {
	var s entity.AppSettings
	err := r.q.QueryRow(ctx, `SELECT logo_url, updated_at FROM app_settings WHERE id = 1`).Scan(&s.LogoURL, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get app settings", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.AppSettings) error {
	query := `
		INSERT INTO app_settings (id, logo_url, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET logo_url = EXCLUDED.logo_url, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, s.LogoURL); err != nil {
		return wrapErr("upsert app settings", err)
	}
	return nil
}
