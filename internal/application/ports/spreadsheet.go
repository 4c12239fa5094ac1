package ports

import (
	"io"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// SheetFormat formato de planilla aceptado.
type SheetFormat string

const (
	FormatXLSX SheetFormat = "xlsx"
	FormatCSV  SheetFormat = "csv"
)

// ReadOptions opciones de lectura. Charset solo aplica a CSV ("utf-8" o "windows-1252"; vacío = detectar).
type ReadOptions struct {
	Format  SheetFormat
	Charset string
}

// RowError fila que no pudo convertirse en repuesto. Row es el número de fila de la planilla (1 = cabecera).
type RowError struct {
	Row           int
	Column        string
	ArticleNumber string
	Message       string
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return e.Message
	}
	return e.Column + ": " + e.Message
}

// ParsedRow resultado de una fila: Part o Err, nunca ambos.
type ParsedRow struct {
	Row  int
	Part *entity.SparePart
	Err  *RowError
}

// SpreadsheetReader convierte una planilla en filas parseadas explícitamente.
type SpreadsheetReader interface {
	ReadParts(r io.Reader, opts ReadOptions) ([]ParsedRow, error)
}

// SpreadsheetWriter exporta repuestos a planilla.
type SpreadsheetWriter interface {
	WriteParts(w io.Writer, parts []*entity.SparePart) error
}
