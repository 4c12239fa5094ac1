package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// ExportUseCase exporta repuestos a planilla.
type ExportUseCase struct {
	repo   repository.SparePartRepository
	writer ports.SpreadsheetWriter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.SparePartRepository, writer ports.SpreadsheetWriter) *ExportUseCase {
	return &ExportUseCase{repo: repo, writer: writer}
}

// Export escribe todos los repuestos, o solo los de articleNumbers si no está vacío.
func (uc *ExportUseCase) Export(ctx context.Context, w io.Writer, articleNumbers []string) error {
	var (
		parts []*entity.SparePart
		err   error
	)
	if len(articleNumbers) == 0 {
		parts, err = uc.repo.List(ctx)
	} else {
		parts, err = uc.repo.ListByArticleNumbers(ctx, articleNumbers)
	}
	if err != nil {
		return err
	}
	return uc.writer.WriteParts(w, parts)
}
