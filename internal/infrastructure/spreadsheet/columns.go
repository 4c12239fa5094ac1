// Package spreadsheet lee y escribe planillas de repuestos (.xlsx con excelize, .csv).
// Las cabeceras son las que exporta la UI (en sueco).
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Cabeceras de columna.
const (
	ColArticleNumber   = "Art. Nr In."
	ColSupplierArticle = "Art. Nr Lev."
	ColName            = "Benämning"
	ColType            = "Typ/Till"
	ColDepartment      = "Avdelning"
	ColRoomSection     = "Rum/Sektion"
	ColMachineNumber   = "Maskin Nr"
	ColLength          = "Längd"
	ColHeight          = "Höjd"
	ColWidth           = "Bredd"
	ColWeight          = "Vikt"
	ColManufacturer    = "Tillverkare"
	ColSupplier        = "Leverantör"
	ColSupplierOrgID   = "Lev. ORG.ID"
	ColPrice           = "Pris Tkr"
	ColLocation        = "Lagerplats"
	ColQuantity        = "Antal"
	ColDate            = "Datum"
	ColStoragePriority = "Lagerprioritering"
	ColAddedBy         = "Inlagd av"
	ColOrdererName     = "Beställares Namn"
	ColBuilding        = "Byggnad"
	ColStorageRack     = "Lagringsställ"
	ColShelfLevel      = "Hyllplan"
	ColComment         = "Kommentar"
	ColImageURL        = "Bild URL"
)

// SheetName hoja de la exportación.
const SheetName = "Reservdelar"

type column struct {
	header string
	get    func(p *entity.SparePart) any
	set    func(p *entity.SparePart, raw string) error
}

func textCol(header string, field func(p *entity.SparePart) *string) column {
	return column{
		header: header,
		get:    func(p *entity.SparePart) any { return *field(p) },
		set:    func(p *entity.SparePart, raw string) error { *field(p) = raw; return nil },
	}
}

func numCol(header string, field func(p *entity.SparePart) *decimal.Decimal) column {
	return column{
		header: header,
		get:    func(p *entity.SparePart) any { return field(p).InexactFloat64() },
		set: func(p *entity.SparePart, raw string) error {
			d, err := parseDecimal(raw)
			if err != nil {
				return err
			}
			*field(p) = d
			return nil
		},
	}
}

var columns = []column{
	textCol(ColArticleNumber, func(p *entity.SparePart) *string { return &p.InternalArticleNumber }),
	textCol(ColSupplierArticle, func(p *entity.SparePart) *string { return &p.SupplierArticleNumber }),
	textCol(ColName, func(p *entity.SparePart) *string { return &p.Name }),
	textCol(ColType, func(p *entity.SparePart) *string { return &p.Type }),
	textCol(ColDepartment, func(p *entity.SparePart) *string { return &p.Department }),
	textCol(ColRoomSection, func(p *entity.SparePart) *string { return &p.RoomSection }),
	textCol(ColMachineNumber, func(p *entity.SparePart) *string { return &p.MachineNumber }),
	numCol(ColLength, func(p *entity.SparePart) *decimal.Decimal { return &p.Dimensions.Length }),
	numCol(ColHeight, func(p *entity.SparePart) *decimal.Decimal { return &p.Dimensions.Height }),
	numCol(ColWidth, func(p *entity.SparePart) *decimal.Decimal { return &p.Dimensions.Width }),
	numCol(ColWeight, func(p *entity.SparePart) *decimal.Decimal { return &p.Weight }),
	textCol(ColManufacturer, func(p *entity.SparePart) *string { return &p.Manufacturer }),
	textCol(ColSupplier, func(p *entity.SparePart) *string { return &p.Supplier }),
	textCol(ColSupplierOrgID, func(p *entity.SparePart) *string { return &p.SupplierOrgID }),
	numCol(ColPrice, func(p *entity.SparePart) *decimal.Decimal { return &p.Price }),
	textCol(ColLocation, func(p *entity.SparePart) *string { return &p.Location }),
	{
		header: ColQuantity,
		get:    func(p *entity.SparePart) any { return p.Quantity },
		set: func(p *entity.SparePart, raw string) error {
			n, err := parseInt(raw, 0)
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("no puede ser negativa")
			}
			if n > entity.MaxQuantity {
				return fmt.Errorf("no puede superar %d", entity.MaxQuantity)
			}
			p.Quantity = n
			return nil
		},
	},
	textCol(ColDate, func(p *entity.SparePart) *string { return &p.Date }),
	{
		header: ColStoragePriority,
		get:    func(p *entity.SparePart) any { return p.StoragePriority },
		set: func(p *entity.SparePart, raw string) error {
			n, err := parseInt(raw, entity.DefaultStoragePriority)
			if err != nil {
				return err
			}
			if n < entity.MinStoragePriority || n > entity.MaxStoragePriority {
				return fmt.Errorf("debe estar entre %d y %d", entity.MinStoragePriority, entity.MaxStoragePriority)
			}
			p.StoragePriority = n
			return nil
		},
	},
	textCol(ColAddedBy, func(p *entity.SparePart) *string { return &p.AddedBy }),
	textCol(ColOrdererName, func(p *entity.SparePart) *string { return &p.OrdererName }),
	textCol(ColBuilding, func(p *entity.SparePart) *string { return &p.Building }),
	textCol(ColStorageRack, func(p *entity.SparePart) *string { return &p.StorageRack }),
	textCol(ColShelfLevel, func(p *entity.SparePart) *string { return &p.ShelfLevel }),
	textCol(ColComment, func(p *entity.SparePart) *string { return &p.Comment }),
	textCol(ColImageURL, func(p *entity.SparePart) *string { return &p.ImageURL }),
}

// Headers cabeceras en el orden de exportación.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

// parseDecimal vacío = 0; acepta coma decimal ("12,5") y espacios de miles ("1 250,5").
func parseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q no es un número", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("no puede ser negativo")
	}
	return d, nil
}

// parseInt vacío = def; acepta "10" y "10.0" (Excel guarda enteros como float), rechaza "2.5".
func parseInt(raw string, def int) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%q no es un entero", raw)
	}
	return int(d.IntPart()), nil
}
