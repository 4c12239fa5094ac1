package dto

// ImportPartsRequest importación masiva desde la UI (filas ya convertidas a JSON).
type ImportPartsRequest struct {
	Parts []SparePartRequest `json:"parts" validate:"required"`
}

// RowErrorDTO fila descartada y motivo. Row es 1-based (incluye la cabecera en planillas).
type RowErrorDTO struct {
	Row           int    `json:"row"`
	Column        string `json:"column,omitempty"`
	ArticleNumber string `json:"articleNumber,omitempty"`
	Message       string `json:"message"`
}

// ImportResultResponse resultado de una importación no transaccional:
// las filas anteriores a FailedAt quedan confirmadas aunque la corrida se detenga.
type ImportResultResponse struct {
	Total     int           `json:"total"`
	Imported  int           `json:"imported"`
	Skipped   int           `json:"skipped"`
	FailedAt  *int          `json:"failedAt,omitempty"`
	Error     string        `json:"error,omitempty"`
	RowErrors []RowErrorDTO `json:"rowErrors"`
}
