package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
)

// SettingsHandler configuración de la aplicación (logo).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.AppSettingsResponse
// @Router       /api/app-settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAppSettingsRequest  true  "Configuración"
// @Success      200   {object}  dto.AppSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/app-settings [post]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppSettingsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
