package domain

import "time"

// User represents a persisted user record. Users are created on first login
// and never deleted; only profile fields change afterwards.
type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	FirstName       *string   `db:"first_name" json:"first_name,omitempty"`
	LastName        *string   `db:"last_name" json:"last_name,omitempty"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
