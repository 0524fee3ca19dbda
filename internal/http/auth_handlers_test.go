package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/session"
)

type memStore struct {
	sessions map[string]session.Session
	users    map[string]domain.User
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[string]session.Session),
		users:    make(map[string]domain.User),
	}
}

func (s *memStore) Create(_ context.Context, sid, userID string, expire time.Time) error {
	s.sessions[sid] = session.Session{SID: sid, UserID: userID, Expire: expire}
	return nil
}

func (s *memStore) GetUserByToken(_ context.Context, sid string) (*domain.User, error) {
	sess, ok := s.sessions[sid]
	if !ok || !sess.Expire.After(time.Now()) {
		return nil, nil
	}
	u, ok := s.users[sess.UserID]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (s *memStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func (s *memStore) TouchLastSeen(context.Context, string) error { return nil }

type memUsers struct {
	store *memStore
}

func (m *memUsers) Upsert(_ context.Context, identity domain.User) (*domain.User, error) {
	m.store.users[identity.ID] = identity
	out := identity
	return &out, nil
}

func authApp(store *memStore) (*fiber.App, *AuthHandler) {
	sessions := session.NewManager(store, false)
	provider := &auth.SessionProvider{Sessions: sessions}
	h := &AuthHandler{
		Users:    &memUsers{store: store},
		Sessions: sessions,
		Provider: provider,
	}

	app := fiber.New()
	app.Get("/api/login", h.Login)
	app.Get("/api/callback", h.Callback)
	app.Get("/api/logout", h.Logout)
	app.Get("/api/auth/user", auth.RequireUser(provider), h.CurrentUser)
	return app, h
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginEstablishesSessionAndRedirects(t *testing.T) {
	store := newMemStore()
	app, _ := authApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/login", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	cookie := findCookie(resp, session.CookieName)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)

	// The cookie works on the gated endpoint.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCallbackRedirectsHome(t *testing.T) {
	app, _ := authApp(newMemStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/callback", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	store := newMemStore()
	app, _ := authApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/login", nil))
	require.NoError(t, err)
	resp.Body.Close()
	token := findCookie(resp, session.CookieName).Value

	req := httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	cleared := findCookie(resp, session.CookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// Replaying the old token fails.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutWithoutSessionSucceeds(t *testing.T) {
	app, _ := authApp(newMemStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/logout", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	cleared := findCookie(resp, session.CookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}
