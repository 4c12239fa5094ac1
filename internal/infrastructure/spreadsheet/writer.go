package spreadsheet

import (
	"fmt"
	"io"

	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

var _ ports.SpreadsheetWriter = (*Writer)(nil)

// Writer exporta repuestos a .xlsx con una hoja "Reservdelar" y las mismas cabeceras que acepta Reader.
type Writer struct{}

// NewWriter crea el exportador.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteParts escribe el libro completo en w.
func (wr *Writer) WriteParts(w io.Writer, parts []*entity.SparePart) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renombrar hoja: %w", err)
	}

	headers := Headers()
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("estilo cabecera: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("estilo cabecera: %w", err)
	}

	for i, p := range parts {
		values := make([]any, len(columns))
		for j, c := range columns {
			values[j] = c.get(p)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("escribir xlsx: %w", err)
	}
	return nil
}
