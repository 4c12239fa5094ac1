package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
	"github.com/rs/zerolog"
)

// HTTPObserver recibe la duración de cada petición (lo implementa metrics.Metrics).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RequestLogger registra método, ruta, estado y latencia de cada petición.
// Los 5xx salen a nivel error, los 4xx a warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// Metrics observa cada petición con el patrón de ruta (no la URL concreta) para acotar cardinalidad.
func Metrics(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)
		obs.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

// responseStatus estado final; si el handler devolvió error, el ErrorHandler aún no escribió la respuesta.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	status, _ := statusFor(err)
	return status
}
