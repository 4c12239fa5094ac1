// Package pdf genera etiquetas de repuestos en PDF con Maroto v2.
//
// Etiqueta (una por repuesto):
//
//	┌───────────────────────────┐
//	│          [ QR ]           │  payload = número de artículo interno
//	│  Nombre del repuesto      │
//	│  Art. Nr In.: P-0001      │
//	│  Plats: A1 · Hus 3 · ...  │
//	└───────────────────────────┘
//
// GenerateLabel produce una página del tamaño de la etiqueta; GenerateSheet un A4 con 3 por fila.
package pdf

import (
	"errors"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

var _ ports.LabelPDFGenerator = (*LabelGenerator)(nil)

// ── Paleta y medidas ──────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	labelWidthMM  = 70.0
	labelHeightMM = 62.0
	labelsPerRow  = 3
	qrRowHeight   = 38.0
	textRowHeight = 18.0
)

// LabelGenerator implementa ports.LabelPDFGenerator.
type LabelGenerator struct {
	title string
}

// NewLabelGenerator construye el generador; title va en los metadatos del PDF.
func NewLabelGenerator(title string) *LabelGenerator {
	if title == "" {
		title = "Reservdelar"
	}
	return &LabelGenerator{title: title}
}

// GenerateLabel una etiqueta en una página de 70x62 mm.
func (g *LabelGenerator) GenerateLabel(part *entity.SparePart) ([]byte, error) {
	if part == nil {
		return nil, errors.New("generate label: repuesto nil")
	}
	cfg := config.NewBuilder().
		WithDimensions(labelWidthMM, labelHeightMM).
		WithLeftMargin(3).WithRightMargin(3).WithTopMargin(3).WithBottomMargin(1).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(g.title+" "+part.InternalArticleNumber, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(qrRowHeight).Add(qrCol(12, part)))
	m.AddRows(row.New(textRowHeight).Add(textCol(12, part)))
	return generate(m)
}

// GenerateSheet A4 con labelsPerRow etiquetas por fila, en el orden recibido.
func (g *LabelGenerator) GenerateSheet(parts []*entity.SparePart) ([]byte, error) {
	if len(parts) == 0 {
		return nil, errors.New("generate sheet: sin repuestos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)
	for start := 0; start < len(parts); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(parts) {
			end = len(parts)
		}
		m.AddRows(sheetRows(parts[start:end])...)
	}
	return generate(m)
}

func sheetRows(group []*entity.SparePart) []core.Row {
	size := 12 / labelsPerRow
	qrs := make([]core.Col, 0, labelsPerRow)
	texts := make([]core.Col, 0, labelsPerRow)
	for _, p := range group {
		qrs = append(qrs, qrCol(size, p))
		texts = append(texts, textCol(size, p))
	}
	// columnas vacías para que la última fila conserve el ancho de etiqueta
	for i := len(group); i < labelsPerRow; i++ {
		qrs = append(qrs, col.New(size))
		texts = append(texts, col.New(size))
	}
	return []core.Row{
		row.New(qrRowHeight).Add(qrs...),
		row.New(textRowHeight).Add(texts...),
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.1, SizePercent: 100}),
	}
}

func qrCol(size int, p *entity.SparePart) core.Col {
	return col.New(size).Add(code.NewQr(p.InternalArticleNumber, props.Rect{
		Percent: 95,
		Center:  true,
	}))
}

func textCol(size int, p *entity.SparePart) core.Col {
	return col.New(size).Add(
		text.New(nonEmpty(p.Name, "-"), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 1,
		}),
		text.New("Art. Nr In.: "+p.InternalArticleNumber, props.Text{
			Size: 8, Align: align.Center, Top: 6,
		}),
		text.New(placeLine(p), props.Text{
			Size: 7, Align: align.Center, Top: 11, Color: colorGray,
		}),
	)
}

// placeLine "Plats: <lagerplats> · <byggnad> · <ställ> · <hyllplan>" omitiendo vacíos.
func placeLine(p *entity.SparePart) string {
	var parts []string
	for _, s := range []string{p.Location, p.Building, p.StorageRack, p.ShelfLevel} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "Plats: -"
	}
	return "Plats: " + strings.Join(parts, " · ")
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
