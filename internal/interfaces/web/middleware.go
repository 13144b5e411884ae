package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/drinktrace-web/pkg/logger"
)

// AccessLog registra cada petición atendida con método, ruta, estado y
// latencia.
func AccessLog(log *logger.Logger) fiber.Handler {
	l := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		l.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
