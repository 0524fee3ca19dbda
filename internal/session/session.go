package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
)

// Session is one durable session row. The sid is the sole credential:
// possession of a valid, unexpired sid is authentication as UserID.
type Session struct {
	SID    string    `db:"sid"`
	UserID string    `db:"user_id"`
	Expire time.Time `db:"expire"`
}

// Store is the data-access contract for session rows. The Postgres
// implementation lives in store.go; tests use an in-memory fake.
type Store interface {
	// Create inserts a new session row.
	Create(ctx context.Context, sid, userID string, expire time.Time) error

	// GetUserByToken looks up an unexpired session by sid and returns its
	// owning user. Returns (nil, nil) when no unexpired row matches; the
	// caller cannot distinguish "never existed" from "expired".
	GetUserByToken(ctx context.Context, sid string) (*domain.User, error)

	// Delete removes the session row if present. No-op when already gone.
	Delete(ctx context.Context, sid string) error

	// TouchLastSeen records user activity. Best-effort bookkeeping only.
	TouchLastSeen(ctx context.Context, userID string) error
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
