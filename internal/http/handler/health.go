package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// pinger is satisfied by *sql.DB.
type pinger interface {
	PingContext(ctx context.Context) error
}

type statusResponse struct {
	Status  string `json:"status"`
	Running bool   `json:"running"`
}

// Root godoc
// @Summary Server status
// @Tags health
// @Produce json
// @Success 200 {object} handler.statusResponse
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusResponse{Status: "ok", Running: true})
	}
}

// HealthCheck reports readiness. With a database configured it must answer a
// ping within two seconds; a nil pinger always reports healthy.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} handler.errorPayload
// @Router /health [get]
func HealthCheck(db pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
