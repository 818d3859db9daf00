package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the Authorization bearer token against the configured
// API token. Requests without a valid token get a 401; the standardized
// envelope is produced by the handler package's error handler. An empty
// configured token disables the check, which keeps local development and
// app.Test setups working without credentials.
func Auth(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		return c.Next()
	}
}
