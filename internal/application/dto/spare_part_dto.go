package dto

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DimensionsDTO medidas del repuesto.
type DimensionsDTO struct {
	Length decimal.Decimal `json:"length"`
	Height decimal.Decimal `json:"height"`
	Width  decimal.Decimal `json:"width"`
}

// SparePartRequest alta o sobrescritura (upsert) de un repuesto por internalArticleNumber.
type SparePartRequest struct {
	InternalArticleNumber string          `json:"internalArticleNumber" validate:"required,max=100"`
	SupplierArticleNumber string          `json:"supplierArticleNumber" validate:"max=100"`
	Name                  string          `json:"name" validate:"max=255"`
	Type                  string          `json:"type"`
	Department            string          `json:"department"`
	RoomSection           string          `json:"roomSection"`
	MachineNumber         string          `json:"machineNumber"`
	Dimensions            DimensionsDTO   `json:"dimensions"`
	Weight                decimal.Decimal `json:"weight"`
	Manufacturer          string          `json:"manufacturer"`
	Supplier              string          `json:"supplier"`
	SupplierOrgID         string          `json:"supplierOrgId"`
	Price                 decimal.Decimal `json:"price"`
	Location              string          `json:"location"`
	Building              string          `json:"building"`
	StorageRack           string          `json:"storageRack"`
	ShelfLevel            string          `json:"shelfLevel"`
	Quantity              int             `json:"quantity" validate:"min=0"`
	Date                  string          `json:"date"`
	StoragePriority       int             `json:"storagePriority" validate:"omitempty,min=1,max=5"`
	AddedBy               string          `json:"addedBy"`
	OrdererName           string          `json:"ordererName"`
	ImageURL              string          `json:"imageUrl" validate:"max=2048"`
	Comment               string          `json:"comment"`
}

// SparePartResponse salida de un repuesto.
type SparePartResponse struct {
	InternalArticleNumber string          `json:"internalArticleNumber"`
	SupplierArticleNumber string          `json:"supplierArticleNumber"`
	Name                  string          `json:"name"`
	Type                  string          `json:"type"`
	Department            string          `json:"department"`
	RoomSection           string          `json:"roomSection"`
	MachineNumber         string          `json:"machineNumber"`
	Dimensions            DimensionsDTO   `json:"dimensions"`
	Weight                decimal.Decimal `json:"weight"`
	Manufacturer          string          `json:"manufacturer"`
	Supplier              string          `json:"supplier"`
	SupplierOrgID         string          `json:"supplierOrgId"`
	Price                 decimal.Decimal `json:"price"`
	Location              string          `json:"location"`
	Building              string          `json:"building"`
	StorageRack           string          `json:"storageRack"`
	ShelfLevel            string          `json:"shelfLevel"`
	Quantity              int             `json:"quantity"`
	Date                  string          `json:"date"`
	StoragePriority       int             `json:"storagePriority"`
	AddedBy               string          `json:"addedBy"`
	OrdererName           string          `json:"ordererName"`
	ImageURL              string          `json:"imageUrl,omitempty"`
	Comment               string          `json:"comment,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// UpdateQuantityRequest cambio manual de cantidad: reason = quién, message = motivo.
type UpdateQuantityRequest struct {
	Quantity *int   `json:"quantity" validate:"required,min=0"`
	Reason   string `json:"reason" validate:"max=255"`
	Message  string `json:"message"`
}

// WithdrawRequest retiro por escaneo QR; la cantidad resultante nunca baja de 0.
type WithdrawRequest struct {
	Amount      int    `json:"amount" validate:"required,min=1"`
	PerformedBy string `json:"performedBy" validate:"max=255"`
	Comment     string `json:"comment"`
}

// ToSparePart convierte la petición en entidad de dominio.
func (r SparePartRequest) ToSparePart() *entity.SparePart {
	return &entity.SparePart{
		InternalArticleNumber: r.InternalArticleNumber,
		SupplierArticleNumber: r.SupplierArticleNumber,
		Name:                  r.Name,
		Type:                  r.Type,
		Department:            r.Department,
		RoomSection:           r.RoomSection,
		MachineNumber:         r.MachineNumber,
		Dimensions: entity.Dimensions{
			Length: r.Dimensions.Length,
			Height: r.Dimensions.Height,
			Width:  r.Dimensions.Width,
		},
		Weight:          r.Weight,
		Manufacturer:    r.Manufacturer,
		Supplier:        r.Supplier,
		SupplierOrgID:   r.SupplierOrgID,
		Price:           r.Price,
		Location:        r.Location,
		Building:        r.Building,
		StorageRack:     r.StorageRack,
		ShelfLevel:      r.ShelfLevel,
		Quantity:        r.Quantity,
		Date:            r.Date,
		StoragePriority: r.StoragePriority,
		AddedBy:         r.AddedBy,
		OrdererName:     r.OrdererName,
		ImageURL:        r.ImageURL,
		Comment:         r.Comment,
	}
}

// NewSparePartRequest operación inversa de ToSparePart (importación desde planilla).
func NewSparePartRequest(p *entity.SparePart) SparePartRequest {
	return SparePartRequest{
		InternalArticleNumber: p.InternalArticleNumber,
		SupplierArticleNumber: p.SupplierArticleNumber,
		Name:                  p.Name,
		Type:                  p.Type,
		Department:            p.Department,
		RoomSection:           p.RoomSection,
		MachineNumber:         p.MachineNumber,
		Dimensions:            DimensionsDTO{Length: p.Dimensions.Length, Height: p.Dimensions.Height, Width: p.Dimensions.Width},
		Weight:                p.Weight,
		Manufacturer:          p.Manufacturer,
		Supplier:              p.Supplier,
		SupplierOrgID:         p.SupplierOrgID,
		Price:                 p.Price,
		Location:              p.Location,
		Building:              p.Building,
		StorageRack:           p.StorageRack,
		ShelfLevel:            p.ShelfLevel,
		Quantity:              p.Quantity,
		Date:                  p.Date,
		StoragePriority:       p.StoragePriority,
		AddedBy:               p.AddedBy,
		OrdererName:           p.OrdererName,
		ImageURL:              p.ImageURL,
		Comment:               p.Comment,
	}
}

// NewSparePartResponse mapea la entidad a la salida HTTP.
func NewSparePartResponse(p *entity.SparePart) *SparePartResponse {
	if p == nil {
		return nil
	}
	return &SparePartResponse{
		InternalArticleNumber: p.InternalArticleNumber,
		SupplierArticleNumber: p.SupplierArticleNumber,
		Name:                  p.Name,
		Type:                  p.Type,
		Department:            p.Department,
		RoomSection:           p.RoomSection,
		MachineNumber:         p.MachineNumber,
		Dimensions:            DimensionsDTO{Length: p.Dimensions.Length, Height: p.Dimensions.Height, Width: p.Dimensions.Width},
		Weight:                p.Weight,
		Manufacturer:          p.Manufacturer,
		Supplier:              p.Supplier,
		SupplierOrgID:         p.SupplierOrgID,
		Price:                 p.Price,
		Location:              p.Location,
		Building:              p.Building,
		StorageRack:           p.StorageRack,
		ShelfLevel:            p.ShelfLevel,
		Quantity:              p.Quantity,
		Date:                  p.Date,
		StoragePriority:       p.StoragePriority,
		AddedBy:               p.AddedBy,
		OrdererName:           p.OrdererName,
		ImageURL:              p.ImageURL,
		Comment:               p.Comment,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
