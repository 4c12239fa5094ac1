package repository

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// SettingsRepository fila única de configuración de la aplicación.
type SettingsRepository interface {
	// Get devuelve nil, nil si todavía no hay fila.
	Get(ctx context.Context) (*entity.AppSettings, error)
	Upsert(ctx context.Context, settings *entity.AppSettings) error
}
