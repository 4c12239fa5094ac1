package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
)

// HistoryHandler consulta del historial de cantidades y de cambios de campos.
type HistoryHandler struct {
	uc *inventory.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *inventory.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// PartHistory godoc
// @Summary      Historial de cantidades (más reciente primero)
// @Description  Un número de artículo sin historial devuelve una lista vacía.
// @Tags         history
// @Produce      json
// @Param        articleNumber  path  string  true  "Número de artículo interno"
// @Success      200  {array}   dto.PartHistoryResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/part-history/{articleNumber} [get]
func (h *HistoryHandler) PartHistory(c *fiber.Ctx) error {
	out, err := h.uc.GetHistory(c.Context(), pathParam(c, "articleNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FieldHistory godoc
// @Summary      Historial de cambios de atributos
// @Tags         history
// @Produce      json
// @Param        articleNumber  path  string  true  "Número de artículo interno"
// @Success      200  {array}   dto.FieldHistoryResponse
// @Router       /api/field-history/{articleNumber} [get]
func (h *HistoryHandler) FieldHistory(c *fiber.Ctx) error {
	out, err := h.uc.GetFieldHistory(c.Context(), pathParam(c, "articleNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
