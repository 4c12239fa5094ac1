package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
)

// LabelHandler etiquetas QR en PDF.
type LabelHandler struct {
	uc *usecase.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *usecase.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Label godoc
// @Summary      Etiqueta QR de un repuesto
// @Tags         labels
// @Produce      application/pdf
// @Param        id   path  string  true  "Número de artículo interno"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id}/label [get]
func (h *LabelHandler) Label(c *fiber.Ctx) error {
	id := pathParam(c, "id")
	pdf, err := h.uc.Label(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "etikett-"+id+".pdf", pdf)
}

// Sheet godoc
// @Summary      Hoja de etiquetas QR (3 por fila)
// @Tags         labels
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.LabelSheetRequest  true  "Números de artículo"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/labels [post]
func (h *LabelHandler) Sheet(c *fiber.Ctx) error {
	var in dto.LabelSheetRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	pdf, err := h.uc.Sheet(c.Context(), in.ArticleNumbers)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "etiketter.pdf", pdf)
}

func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(body)
}
