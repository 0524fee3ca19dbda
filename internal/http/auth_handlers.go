package http

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/session"
)

// UserStore is the user persistence the auth flow needs;
// *user.Repository satisfies it.
type UserStore interface {
	Upsert(ctx context.Context, identity domain.User) (*domain.User, error)
}

// AuthHandler serves the stub identity endpoints. No external identity
// exchange happens in this deployment: login passes the provider's fixed
// identity through and establishes a durable session for it.
type AuthHandler struct {
	Users    UserStore
	Sessions *session.Manager
	Provider auth.Provider
}

// Login upserts the login identity, issues a session cookie and redirects
// to the application root.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	identity := h.Provider.LoginIdentity()

	u, err := h.Users.Upsert(userContext(c), identity)
	if err != nil {
		log.Printf("auth: upsert login identity: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}

	if _, err := h.Sessions.Create(c, u.ID); err != nil {
		log.Printf("auth: create session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}

	return c.Redirect("/", fiber.StatusFound)
}

// Callback exists for parity with hosted identity providers; here it only
// redirects home.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusFound)
}

// Logout destroys the server-side session, clears the cookie and redirects
// home. Safe to call with no active session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Sessions.Destroy(c); err != nil {
		// The cookie is cleared regardless; losing the row delete only
		// leaves an expiring orphan.
		log.Printf("auth: destroy session: %v", err)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// CurrentUser returns the gated user. In bypass mode this is the fixed demo
// identity.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	u, ok := auth.UserFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(u)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
