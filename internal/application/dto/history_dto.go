package dto

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// PartHistoryResponse entrada del historial de cantidades.
type PartHistoryResponse struct {
	ID               string    `json:"id"`
	PartNumber       string    `json:"partNumber"`
	ActionType       string    `json:"actionType"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	PerformedBy      string    `json:"performedBy"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FieldHistoryResponse cambio de un atributo del repuesto.
type FieldHistoryResponse struct {
	ID          string    `json:"id"`
	PartNumber  string    `json:"partNumber"`
	FieldName   string    `json:"fieldName"`
	OldValue    string    `json:"oldValue"`
	NewValue    string    `json:"newValue"`
	PerformedBy string    `json:"performedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPartHistoryResponse mapea la entidad a la salida HTTP.
func NewPartHistoryResponse(h *entity.PartHistory) *PartHistoryResponse {
	if h == nil {
		return nil
	}
	return &PartHistoryResponse{
		ID:               h.ID,
		PartNumber:       h.PartNumber,
		ActionType:       h.ActionType,
		Quantity:         h.Quantity,
		PreviousQuantity: h.PreviousQuantity,
		NewQuantity:      h.NewQuantity,
		PerformedBy:      h.PerformedBy,
		Comment:          h.Comment,
		CreatedAt:        h.CreatedAt,
	}
}

// NewFieldHistoryResponse mapea la entidad a la salida HTTP.
func NewFieldHistoryResponse(h *entity.FieldHistory) *FieldHistoryResponse {
	if h == nil {
		return nil
	}
	return &FieldHistoryResponse{
		ID:          h.ID,
		PartNumber:  h.PartNumber,
		FieldName:   h.FieldName,
		OldValue:    h.OldValue,
		NewValue:    h.NewValue,
		PerformedBy: h.PerformedBy,
		CreatedAt:   h.CreatedAt,
	}
}
