package entity

import "time"

// Tipos de acción del historial de cantidades (derivados, nunca entrada del usuario).
const (
	ActionTypeAddition   = "ADDITION"
	ActionTypeWithdrawal = "WITHDRAWAL"
)

// PartHistory entrada inmutable del historial de cantidades de un repuesto.
// PartNumber es una referencia débil: la entrada sobrevive al borrado del repuesto.
type PartHistory struct {
	ID               string
	PartNumber       string
	ActionType       string
	Quantity         int // cantidad anterior (valor "antes" que muestra la UI)
	PreviousQuantity int
	NewQuantity      int
	PerformedBy      string
	Comment          string
	CreatedAt        time.Time
	Seq              int64 // orden de inserción; desempata CreatedAt
}
