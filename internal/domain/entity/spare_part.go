package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Prioridad de almacenamiento permitida (1 = más alta).
const (
	MinStoragePriority     = 1
	MaxStoragePriority     = 5
	DefaultStoragePriority = 3
)

// MaxQuantity tope de las columnas INTEGER de cantidad en PostgreSQL.
const MaxQuantity = math.MaxInt32

// Dimensions medidas físicas del repuesto.
type Dimensions struct {
	Length decimal.Decimal
	Height decimal.Decimal
	Width  decimal.Decimal
}

// SparePart representa un repuesto del inventario, identificado por su número de artículo interno.
// Quantity solo cambia a través del servicio de mutación de cantidades (ver application/inventory).
type SparePart struct {
	InternalArticleNumber string // clave estable, nunca se reutiliza
	SupplierArticleNumber string
	Name                  string
	Type                  string
	Department            string
	RoomSection           string
	MachineNumber         string
	Dimensions            Dimensions
	Weight                decimal.Decimal
	Manufacturer          string
	Supplier              string
	SupplierOrgID         string
	Price                 decimal.Decimal
	Location              string
	Building              string
	StorageRack           string
	ShelfLevel            string
	Quantity              int
	Date                  string // fecha tal como la registra el usuario
	StoragePriority       int    // 1..5
	AddedBy               string
	OrdererName           string
	ImageURL              string
	Comment               string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
