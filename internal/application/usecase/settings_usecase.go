package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// SettingsUseCase configuración global (logo).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración o los valores por defecto si aún no se guardó.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.AppSettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil || s.LogoURL == "" {
		return &dto.AppSettingsResponse{LogoURL: entity.DefaultLogoURL}, nil
	}
	return toSettingsResponse(s), nil
}

// Update guarda la configuración (fila única).
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateAppSettingsRequest) (*dto.AppSettingsResponse, error) {
	logo := strings.TrimSpace(in.LogoURL)
	if logo == "" {
		return nil, domain.Invalid("logoUrl", "es obligatorio")
	}
	s := &entity.AppSettings{LogoURL: logo, UpdatedAt: time.Now()}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return uc.Get(ctx)
}

func toSettingsResponse(s *entity.AppSettings) *dto.AppSettingsResponse {
	out := &dto.AppSettingsResponse{LogoURL: s.LogoURL}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
