package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// responseStatus resolves the status a request will finish with. Errors
// returned up the chain are rendered by the app ErrorHandler only after all
// middleware has returned, so the response code is not final yet.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// routePattern returns the matched route path (e.g. /chat/:id) so labels stay
// low-cardinality, falling back to the raw path for unmatched requests.
func routePattern(c *fiber.Ctx) string {
	path := c.Route().Path
	// Unmatched requests leave the last Use() route ("/") in place.
	if path == "" || (path == "/" && c.Path() != "/") {
		return c.Path()
	}
	return path
}
