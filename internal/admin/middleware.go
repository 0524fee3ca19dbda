package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RequireAdminKey compares X-Admin-Key against a stored bcrypt hash, so the
// plaintext key never lives in the server's environment.
// If the hash is unset we hard-fail (safer than accidentally open).
func RequireAdminKey(keyHash string) fiber.Handler {
	keyHash = strings.TrimSpace(keyHash)
	if keyHash == "" {
		return func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusInternalServerError, "ADMIN_KEY_HASH not set")
		}
	}

	return func(c *fiber.Ctx) error {
		got := strings.TrimSpace(c.Get("X-Admin-Key"))
		if got == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(got)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
