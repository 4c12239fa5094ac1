package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
)

// parseBody lee el JSON y lo valida; responde 400 por sí mismo si falla.
// ok=false significa que la respuesta ya fue escrita.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if err := dto.Validate(out); err != nil {
		return false, writeError(c, err)
	}
	return true, nil
}
