package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// HistoryUseCase consultas de solo lectura sobre los historiales de un repuesto.
type HistoryUseCase struct {
	historyRepo repository.PartHistoryRepository
	fieldRepo   repository.FieldHistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(historyRepo repository.PartHistoryRepository, fieldRepo repository.FieldHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo, fieldRepo: fieldRepo}
}

// GetHistory historial de cantidades, más reciente primero. Artículo desconocido = lista vacía.
func (uc *HistoryUseCase) GetHistory(ctx context.Context, articleNumber string) ([]dto.PartHistoryResponse, error) {
	articleNumber = strings.TrimSpace(articleNumber)
	if articleNumber == "" {
		return nil, domain.Invalid("articleNumber", "es obligatorio")
	}
	list, err := uc.historyRepo.ListByPart(ctx, articleNumber)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *dto.NewPartHistoryResponse(h))
	}
	return out, nil
}

// GetFieldHistory historial de cambios de atributos, más reciente primero.
func (uc *HistoryUseCase) GetFieldHistory(ctx context.Context, articleNumber string) ([]dto.FieldHistoryResponse, error) {
	articleNumber = strings.TrimSpace(articleNumber)
	if articleNumber == "" {
		return nil, domain.Invalid("articleNumber", "es obligatorio")
	}
	list, err := uc.fieldRepo.ListByPart(ctx, articleNumber)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FieldHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *dto.NewFieldHistoryResponse(h))
	}
	return out, nil
}
