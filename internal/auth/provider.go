package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/session"
)

// Provider resolves the authenticated user for a request. The concrete
// strategy is chosen once at startup and injected, so handlers and tests
// never branch on the environment themselves.
type Provider interface {
	// Resolve returns the request's user, or (nil, nil) when unauthenticated.
	Resolve(c *fiber.Ctx) (*domain.User, error)

	// LoginIdentity is the identity the stub login flow establishes. No
	// external identity exchange happens in this deployment.
	LoginIdentity() domain.User
}

// SessionProvider is the enforced strategy: a valid, unexpired session
// cookie is the only way in.
type SessionProvider struct {
	Sessions *session.Manager
}

func (p *SessionProvider) Resolve(c *fiber.Ctx) (*domain.User, error) {
	return p.Sessions.Get(c)
}

func (p *SessionProvider) LoginIdentity() domain.User {
	return demoIdentity()
}

// DemoProvider is the bypass strategy used off-platform: every request is
// the fixed demo identity, no session lookup occurs. Downstream handlers
// must not assume its fields are real values.
type DemoProvider struct{}

func (p *DemoProvider) Resolve(_ *fiber.Ctx) (*domain.User, error) {
	u := demoIdentity()
	return &u, nil
}

func (p *DemoProvider) LoginIdentity() domain.User {
	return demoIdentity()
}

// DemoUserID is stable so transaction and profile rows written in bypass
// mode keep their owner across restarts.
var DemoUserID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8").String()

func demoIdentity() domain.User {
	first := "Demo"
	last := "User"
	return domain.User{
		ID:        DemoUserID,
		Email:     "demo@flux.local",
		FirstName: &first,
		LastName:  &last,
	}
}
