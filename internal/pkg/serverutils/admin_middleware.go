package serverutils

import (
	"crypto/subtle"
	"strings"

	"techmart-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminMiddleware guards the admin routes with a shared API key passed in
// X-Admin-Key or as a bearer token. An empty key leaves the routes open.
func AdminMiddleware(apiKey string, log logger.ILogger) fiber.Handler {
	if apiKey == "" {
		log.Warn("ADMIN", "ADMIN_API_KEY is empty, admin routes are unprotected", nil)
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	return func(ctx *fiber.Ctx) error {
		key := ctx.Get(AdminKeyHeader)
		if key == "" {
			if auth := ctx.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if key == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing admin key"))
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
		}
		return ctx.Next()
	}
}
