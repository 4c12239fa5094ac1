package entity

import "time"

// DefaultLogoURL logo servido por el frontend cuando no hay uno configurado.
const DefaultLogoURL = "/logo.png"

// AppSettings configuración global editable desde la UI (fila única).
type AppSettings struct {
	LogoURL   string
	UpdatedAt time.Time
}
