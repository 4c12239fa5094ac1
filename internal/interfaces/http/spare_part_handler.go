package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
)

// SparePartHandler maneja el CRUD de repuestos y los cambios de cantidad.
type SparePartHandler struct {
	parts    *usecase.SparePartUseCase
	quantity *inventory.QuantityUseCase
}

// NewSparePartHandler construye el handler.
func NewSparePartHandler(parts *usecase.SparePartUseCase, quantity *inventory.QuantityUseCase) *SparePartHandler {
	return &SparePartHandler{parts: parts, quantity: quantity}
}

// List godoc
// @Summary      Listar repuestos
// @Tags         spare-parts
// @Produce      json
// @Success      200  {array}   dto.SparePartResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/spare-parts [get]
func (h *SparePartHandler) List(c *fiber.Ctx) error {
	out, err := h.parts.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener repuesto por número de artículo
// @Tags         spare-parts
// @Produce      json
// @Param        id   path  string  true  "Número de artículo interno"
// @Success      200  {object}  dto.SparePartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [get]
func (h *SparePartHandler) Get(c *fiber.Ctx) error {
	out, err := h.parts.Get(c.Context(), pathParam(c, "id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear o sobrescribir repuesto
// @Description  Upsert por internalArticleNumber. Registra una entrada en el historial de cantidades
// @Description  (previousQuantity = cantidad guardada, 0 si es nuevo) y los cambios de atributos.
// @Tags         spare-parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SparePartRequest  true  "Repuesto"
// @Success      200   {object}  dto.SparePartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/spare-parts [post]
func (h *SparePartHandler) Create(c *fiber.Ctx) error {
	var in dto.SparePartRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.quantity.RegisterPart(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Fijar cantidad
// @Description  reason se guarda como performedBy y message como comment de la entrada del historial.
// @Tags         spare-parts
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Número de artículo interno"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.PartHistoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [put]
func (h *SparePartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.quantity.ApplyQuantityChange(c.Context(), inventory.QuantityChangeInput{
		ArticleNumber: pathParam(c, "id"),
		NewQuantity:   *in.Quantity,
		PerformedBy:   in.Reason,
		Comment:       in.Message,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Withdraw godoc
// @Summary      Retirar unidades (escaneo QR)
// @Description  Resta amount de la cantidad actual; el resultado nunca baja de 0.
// @Tags         spare-parts
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Número de artículo interno"
// @Param        body  body  dto.WithdrawRequest  true  "Unidades a retirar"
// @Success      200   {object}  dto.PartHistoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id}/withdraw [post]
func (h *SparePartHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.quantity.Withdraw(c.Context(), inventory.WithdrawInput{
		ArticleNumber: pathParam(c, "id"),
		Amount:        in.Amount,
		PerformedBy:   in.PerformedBy,
		Comment:       in.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar repuesto
// @Description  El historial del repuesto se conserva.
// @Tags         spare-parts
// @Produce      json
// @Param        id   path  string  true  "Número de artículo interno"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [delete]
func (h *SparePartHandler) Delete(c *fiber.Ctx) error {
	if err := h.parts.Delete(c.Context(), pathParam(c, "id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "OK"})
}
