package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// LabelUseCase etiquetas QR en PDF.
type LabelUseCase struct {
	repo repository.SparePartRepository
	pdf  ports.LabelPDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(repo repository.SparePartRepository, pdf ports.LabelPDFGenerator) *LabelUseCase {
	return &LabelUseCase{repo: repo, pdf: pdf}
}

// Label PDF con la etiqueta de un repuesto.
func (uc *LabelUseCase) Label(ctx context.Context, articleNumber string) ([]byte, error) {
	articleNumber = strings.TrimSpace(articleNumber)
	part, err := uc.repo.GetByArticleNumber(ctx, articleNumber)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: repuesto %s", domain.ErrNotFound, articleNumber)
	}
	return uc.pdf.GenerateLabel(part)
}

// Sheet PDF con una etiqueta por repuesto, en el orden pedido. Falla si alguno no existe.
func (uc *LabelUseCase) Sheet(ctx context.Context, articleNumbers []string) ([]byte, error) {
	if len(articleNumbers) == 0 {
		return nil, domain.Invalid("articleNumbers", "no puede estar vacío")
	}
	found, err := uc.repo.ListByArticleNumbers(ctx, articleNumbers)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[string]*entity.SparePart, len(found))
	for _, p := range found {
		byNumber[p.InternalArticleNumber] = p
	}
	parts := make([]*entity.SparePart, 0, len(articleNumbers))
	var missing []string
	for _, n := range articleNumbers {
		p, ok := byNumber[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		parts = append(parts, p)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: repuestos %s", domain.ErrNotFound, strings.Join(missing, ", "))
	}
	return uc.pdf.GenerateSheet(parts)
}
