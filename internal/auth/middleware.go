package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
)

// RequireUser gates protected endpoints. On success the resolved user is
// stored in locals; on failure the rejection is uniform, with no hint
// whether the session was absent, garbled or expired.
func RequireUser(p Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := p.Resolve(c)
		if err != nil {
			log.Printf("auth: session lookup failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
		}
		if u == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		c.Locals("user", u)
		c.Locals("user_id", u.ID)
		return c.Next()
	}
}

// UserFromLocals returns the gated user set by RequireUser.
func UserFromLocals(c *fiber.Ctx) (*domain.User, bool) {
	u, ok := c.Locals("user").(*domain.User)
	return u, ok
}

// UserIDFromLocals returns the gated user id set by RequireUser.
func UserIDFromLocals(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}
