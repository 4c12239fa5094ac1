package ports

import "github.com/jhoicas/Repuestos-api/internal/domain/entity"

// LabelPDFGenerator genera etiquetas con código QR (payload = número de artículo interno).
type LabelPDFGenerator interface {
	GenerateLabel(part *entity.SparePart) ([]byte, error)
	// GenerateSheet varias etiquetas por página, en el orden recibido.
	GenerateSheet(parts []*entity.SparePart) ([]byte, error)
}
