package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Logger logs one structured event per request: request_id (from RequestID),
// method, path, route, status and latency in milliseconds. 5xx responses are
// logged at error level, 4xx at warn.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := responseStatus(c, err)

		var evt *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
			if err != nil {
				evt = evt.Err(err)
			}
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		default:
			evt = log.Info()
		}

		evt.
			Str("request_id", RequestIDFromCtx(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", routePattern(c)).
			Int("status", status).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000).
			Msg("http_request")

		return err
	}
}
