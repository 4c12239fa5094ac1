package dto

import "time"

// AppSettingsResponse configuración visible por la UI.
type AppSettingsResponse struct {
	LogoURL   string     `json:"logoUrl"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// UpdateAppSettingsRequest actualización de la configuración.
type UpdateAppSettingsRequest struct {
	LogoURL string `json:"logoUrl" validate:"required,max=2048"`
}
