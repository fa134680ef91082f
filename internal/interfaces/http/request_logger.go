package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

const requestIDKey = "request_id"

// RequestLogger middleware de logging estructurado por petición.
// Asigna un request id, lo expone en locals y en el header X-Request-Id,
// y registra método, ruta, estado y duración al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := uuid.New().String()
		c.Locals(requestIDKey, reqID)
		c.Set("X-Request-Id", reqID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if ferr, ok := err.(*fiber.Error); ok {
			status = ferr.Code
		}

		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")

		return err
	}
}

// GetRequestID devuelve el request id asignado por RequestLogger (vacío si no hay).
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(requestIDKey).(string); ok {
		return v
	}
	return ""
}
