package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/domain"
)

var ErrNotFound = errors.New("user not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// Upsert creates the user on first login or refreshes its profile fields on
// subsequent logins. Identities without an id get a fresh one.
func (r *Repository) Upsert(ctx context.Context, identity domain.User) (*domain.User, error) {
	id := strings.TrimSpace(identity.ID)
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid user id")
	}

	var u domain.User
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		 VALUES ($1::uuid, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
		   email = EXCLUDED.email,
		   first_name = EXCLUDED.first_name,
		   last_name = EXCLUDED.last_name,
		   profile_image_url = EXCLUDED.profile_image_url
		 RETURNING id::text, email, first_name, last_name, profile_image_url, created_at`,
		id, identity.Email, identity.FirstName, identity.LastName, identity.ProfileImageURL,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(ctx,
		`SELECT id::text, email, first_name, last_name, profile_image_url, created_at
		 FROM users
		 WHERE id = $1::uuid`,
		id,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
