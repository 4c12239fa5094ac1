package entity

import "time"

// FieldHistory registra el cambio de un atributo (distinto de la cantidad) de un repuesto.
type FieldHistory struct {
	ID          string
	PartNumber  string
	FieldName   string
	OldValue    string
	NewValue    string
	PerformedBy string
	CreatedAt   time.Time
	Seq         int64
}
