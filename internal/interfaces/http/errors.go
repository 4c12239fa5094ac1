package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// statusFor traduce errores de dominio a código HTTP y código de error de la API.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde {code, message} con el estado correspondiente al error.
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler manejador de errores de Fiber: errores de dominio con su estado, *fiber.Error tal cual.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}

// pathParam parámetro de ruta decodificado ("P%2010" -> "P 10").
// Se copia: Fiber reutiliza el buffer de la petición y el valor puede acabar guardado en el historial.
func pathParam(c *fiber.Ctx, name string) string {
	v := strings.Clone(c.Params(name))
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
