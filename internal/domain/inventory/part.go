package inventory

import (
	"strings"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NormalizePart recorta la clave, aplica la prioridad por defecto y valida invariantes del repuesto.
func NormalizePart(p *entity.SparePart) error {
	if p == nil {
		return domain.Invalid("part", "es obligatorio")
	}
	p.InternalArticleNumber = strings.TrimSpace(p.InternalArticleNumber)
	if p.InternalArticleNumber == "" {
		return domain.Invalid("internalArticleNumber", "es obligatorio")
	}
	if err := ValidateQuantity(p.Quantity); err != nil {
		return err
	}
	if p.StoragePriority == 0 {
		p.StoragePriority = entity.DefaultStoragePriority
	}
	if p.StoragePriority < entity.MinStoragePriority || p.StoragePriority > entity.MaxStoragePriority {
		return domain.Invalid("storagePriority", "debe estar entre 1 y 5")
	}
	for name, d := range map[string]decimal.Decimal{
		"price": p.Price, "weight": p.Weight,
		"dimensions.length": p.Dimensions.Length, "dimensions.height": p.Dimensions.Height, "dimensions.width": p.Dimensions.Width,
	} {
		if d.IsNegative() {
			return domain.Invalid(name, "no puede ser negativo")
		}
	}
	return nil
}

// FieldChange diferencia de un atributo entre la versión guardada y la nueva.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// DiffFields compara todos los atributos salvo cantidad y marcas de tiempo.
// Los nombres de campo coinciden con los del JSON de la API.
func DiffFields(old, updated *entity.SparePart) []FieldChange {
	if old == nil || updated == nil {
		return nil
	}
	var out []FieldChange
	str := func(field, a, b string) {
		if a != b {
			out = append(out, FieldChange{Field: field, OldValue: a, NewValue: b})
		}
	}
	dec := func(field string, a, b decimal.Decimal) {
		if !a.Equal(b) {
			out = append(out, FieldChange{Field: field, OldValue: a.String(), NewValue: b.String()})
		}
	}

	str("supplierArticleNumber", old.SupplierArticleNumber, updated.SupplierArticleNumber)
	str("name", old.Name, updated.Name)
	str("type", old.Type, updated.Type)
	str("department", old.Department, updated.Department)
	str("roomSection", old.RoomSection, updated.RoomSection)
	str("machineNumber", old.MachineNumber, updated.MachineNumber)
	dec("dimensions.length", old.Dimensions.Length, updated.Dimensions.Length)
	dec("dimensions.height", old.Dimensions.Height, updated.Dimensions.Height)
	dec("dimensions.width", old.Dimensions.Width, updated.Dimensions.Width)
	dec("weight", old.Weight, updated.Weight)
	str("manufacturer", old.Manufacturer, updated.Manufacturer)
	str("supplier", old.Supplier, updated.Supplier)
	str("supplierOrgId", old.SupplierOrgID, updated.SupplierOrgID)
	dec("price", old.Price, updated.Price)
	str("location", old.Location, updated.Location)
	str("building", old.Building, updated.Building)
	str("storageRack", old.StorageRack, updated.StorageRack)
	str("shelfLevel", old.ShelfLevel, updated.ShelfLevel)
	str("date", old.Date, updated.Date)
	if old.StoragePriority != updated.StoragePriority {
		out = append(out, FieldChange{Field: "storagePriority", OldValue: itoa(old.StoragePriority), NewValue: itoa(updated.StoragePriority)})
	}
	str("addedBy", old.AddedBy, updated.AddedBy)
	str("ordererName", old.OrdererName, updated.OrdererName)
	str("imageUrl", old.ImageURL, updated.ImageURL)
	str("comment", old.Comment, updated.Comment)
	return out
}

func itoa(n int) string {
	return decimal.NewFromInt(int64(n)).String()
}
