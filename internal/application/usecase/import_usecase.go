package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

// PartRegistrar alta/sobrescritura de un repuesto con su entrada de historial (inventory.QuantityUseCase).
type PartRegistrar interface {
	RegisterPart(ctx context.Context, in dto.SparePartRequest) (*dto.SparePartResponse, error)
}

// ImportUseCase importación masiva, fila a fila y SIN transacción global:
// las filas inválidas se saltan y se informan; un error de almacenamiento detiene la corrida
// y las filas anteriores quedan confirmadas (con su historial).
type ImportUseCase struct {
	registrar PartRegistrar
	reader    ports.SpreadsheetReader
	log       *logger.Logger
}

// NewImportUseCase construye el caso de uso. reader puede ser nil si solo se usa ImportParts.
func NewImportUseCase(registrar PartRegistrar, reader ports.SpreadsheetReader, log *logger.Logger) *ImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{registrar: registrar, reader: reader, log: log.Component("import")}
}

type importItem struct {
	row int
	req dto.SparePartRequest
}

// ImportParts aplica la semántica de POST /api/spare-parts a cada elemento, en orden,
// incluidas las reglas de validación del DTO.
// Row en los errores es la posición 1-based dentro de parts.
func (uc *ImportUseCase) ImportParts(ctx context.Context, parts []dto.SparePartRequest) (*dto.ImportResultResponse, error) {
	items := make([]importItem, 0, len(parts))
	for i, p := range parts {
		items = append(items, importItem{row: i + 1, req: p})
	}
	res := &dto.ImportResultResponse{Total: len(parts), RowErrors: []dto.RowErrorDTO{}}
	return res, uc.run(ctx, items, res)
}

// ImportFile parsea la planilla y registra las filas válidas.
func (uc *ImportUseCase) ImportFile(ctx context.Context, r io.Reader, opts ports.ReadOptions) (*dto.ImportResultResponse, error) {
	if uc.reader == nil {
		return nil, fmt.Errorf("import file: %w", domain.ErrStorageUnavailable)
	}
	rows, err := uc.reader.ReadParts(r, opts)
	if err != nil {
		return nil, err
	}

	res := &dto.ImportResultResponse{Total: len(rows), RowErrors: []dto.RowErrorDTO{}}
	items := make([]importItem, 0, len(rows))
	for _, row := range rows {
		if row.Err != nil {
			res.Skipped++
			res.RowErrors = append(res.RowErrors, dto.RowErrorDTO{
				Row: row.Row, Column: row.Err.Column, ArticleNumber: row.Err.ArticleNumber, Message: row.Err.Message,
			})
			continue
		}
		items = append(items, importItem{row: row.Row, req: dto.NewSparePartRequest(row.Part)})
	}
	return res, uc.run(ctx, items, res)
}

func (uc *ImportUseCase) run(ctx context.Context, items []importItem, res *dto.ImportResultResponse) error {
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return uc.stop(res, it.row, err)
		}
		err := dto.Validate(it.req)
		if err == nil {
			_, err = uc.registrar.RegisterPart(ctx, it.req)
		}
		switch {
		case err == nil:
			res.Imported++
		case errors.Is(err, domain.ErrInvalidInput):
			res.Skipped++
			res.RowErrors = append(res.RowErrors, dto.RowErrorDTO{
				Row: it.row, Column: invalidField(err), ArticleNumber: it.req.InternalArticleNumber, Message: err.Error(),
			})
		default:
			return uc.stop(res, it.row, err)
		}
	}
	uc.log.Info().Int("total", res.Total).Int("imported", res.Imported).Int("skipped", res.Skipped).Msg("importación terminada")
	return nil
}

// invalidField campo rechazado, si el error lo informa.
func invalidField(err error) string {
	var ie *domain.InvalidInputError
	if errors.As(err, &ie) {
		return ie.Field
	}
	return ""
}

func (uc *ImportUseCase) stop(res *dto.ImportResultResponse, row int, err error) error {
	failedAt := row
	res.FailedAt = &failedAt
	res.Error = err.Error()
	uc.log.Error().Err(err).Int("row", row).Int("imported", res.Imported).
		Msg("importación detenida; las filas anteriores quedan confirmadas")
	return fmt.Errorf("import row %d: %w", row, err)
}
