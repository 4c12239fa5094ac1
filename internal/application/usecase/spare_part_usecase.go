package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// SparePartUseCase lectura y borrado de repuestos. Altas y cantidades pasan por inventory.QuantityUseCase.
type SparePartUseCase struct {
	repo repository.SparePartRepository
}

// NewSparePartUseCase construye el caso de uso.
func NewSparePartUseCase(repo repository.SparePartRepository) *SparePartUseCase {
	return &SparePartUseCase{repo: repo}
}

// List todos los repuestos ordenados por número de artículo.
func (uc *SparePartUseCase) List(ctx context.Context) ([]dto.SparePartResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SparePartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewSparePartResponse(p))
	}
	return items, nil
}

// Get obtiene un repuesto por número de artículo interno.
func (uc *SparePartUseCase) Get(ctx context.Context, articleNumber string) (*dto.SparePartResponse, error) {
	articleNumber = strings.TrimSpace(articleNumber)
	if articleNumber == "" {
		return nil, domain.Invalid("articleNumber", "es obligatorio")
	}
	part, err := uc.repo.GetByArticleNumber(ctx, articleNumber)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: repuesto %s", domain.ErrNotFound, articleNumber)
	}
	return dto.NewSparePartResponse(part), nil
}

// Delete elimina el repuesto sin mirar su cantidad. El historial se conserva para auditoría.
func (uc *SparePartUseCase) Delete(ctx context.Context, articleNumber string) error {
	articleNumber = strings.TrimSpace(articleNumber)
	if articleNumber == "" {
		return domain.Invalid("articleNumber", "es obligatorio")
	}
	return uc.repo.Delete(ctx, articleNumber)
}
