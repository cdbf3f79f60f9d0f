package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/accesskey"
)

const accessKeyHeader = "X-Access-Key"

// AccessKey returns a middleware that resolves the X-Access-Key header to a
// principal. When roles are given, the key's role must be one of them. The
// ledger trusts the resolved principal; no further checks happen downstream.
func AccessKey(keys *accesskey.Service, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(accessKeyHeader)
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing access key")
		}

		key, err := keys.Verify(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid access key")
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if key.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return fiber.NewError(http.StatusForbidden, "insufficient role")
			}
		}

		c.Locals("access_key_id", key.ID)
		c.Locals("role", key.Role)
		return c.Next()
	}
}
