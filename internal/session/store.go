package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
)

// PGStore persists sessions in Postgres. Expiry is enforced lazily by the
// lookup filter; there is no background sweeper.
type PGStore struct {
	Pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{Pool: pool}
}

func (s *PGStore) Create(ctx context.Context, sid, userID string, expire time.Time) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO sessions (sid, user_id, expire)
		 VALUES ($1, $2::uuid, $3)`,
		sid, userID, expire,
	)
	return err
}

func (s *PGStore) GetUserByToken(ctx context.Context, sid string) (*domain.User, error) {
	var u domain.User
	err := s.Pool.QueryRow(ctx,
		`SELECT u.id::text, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.sid = $1 AND s.expire > NOW()`,
		sid,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PGStore) Delete(ctx context.Context, sid string) error {
	_, err := s.Pool.Exec(ctx, `DELETE FROM sessions WHERE sid = $1`, sid)
	return err
}

func (s *PGStore) TouchLastSeen(ctx context.Context, userID string) error {
	_, err := s.Pool.Exec(ctx,
		`UPDATE users SET last_seen_at = NOW() WHERE id = $1::uuid`, userID)
	return err
}
