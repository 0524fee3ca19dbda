package session

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/cache"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
)

const (
	// CookieName carries the session token.
	CookieName = "flux_session"
	// TTL is the session lifetime; the cookie max-age matches it.
	TTL = 7 * 24 * time.Hour

	touchInterval = time.Minute
	touchTimeout  = 2 * time.Second
)

// Manager owns the session lifecycle: token issuance, cookie handling,
// lookup and destruction. Validity is checked lazily against the stored
// absolute expiry, so revocation is deleting one row.
type Manager struct {
	store  Store
	secure bool

	// lastSeen throttles activity updates so each user hits the store at
	// most once per touchInterval. Losing this cache only costs extra
	// UPDATEs; sessions stay valid via the durable store.
	lastSeen *cache.LRU[time.Time]
}

func NewManager(store Store, secure bool) *Manager {
	return &Manager{
		store:    store,
		secure:   secure,
		lastSeen: cache.New[time.Time](4096, touchInterval),
	}
}

// Create issues a new session for userID and sets the session cookie.
func (m *Manager) Create(c *fiber.Ctx, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	expire := time.Now().Add(TTL)
	if err := m.store.Create(userContext(c), token, userID, expire); err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		Expires:  expire,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return token, nil
}

// Get resolves the incoming cookie to its user. A missing cookie, an unknown
// token and an expired row all return (nil, nil); only store failures are
// errors.
func (m *Manager) Get(c *fiber.Ctx) (*domain.User, error) {
	token := c.Cookies(CookieName)
	if token == "" {
		return nil, nil
	}

	u, err := m.store.GetUserByToken(userContext(c), token)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	m.touch(u.ID)
	return u, nil
}

// Destroy deletes the session row if a token is present (idempotent) and
// unconditionally expires the cookie, so the client always ends logged out.
func (m *Manager) Destroy(c *fiber.Ctx) error {
	var err error
	if token := c.Cookies(CookieName); token != "" {
		err = m.store.Delete(userContext(c), token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return err
}

func (m *Manager) touch(userID string) {
	if _, ok := m.lastSeen.Get(userID); ok {
		return
	}
	m.lastSeen.Set(userID, time.Now())

	// Best-effort, do not block the request.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
		defer cancel()
		_ = m.store.TouchLastSeen(ctx, userID)
	}()
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
