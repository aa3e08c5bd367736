package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Email        string    `db:"email"`         // Unique email, also the login identifier
	Username     string    `db:"username"`      // Display name, defaults to the email local part
	PasswordHash string    `db:"password_hash"` // Bcrypt hash, never serialized
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	AvatarURL    *string   `db:"avatar_url"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// User is the public projection of a user returned by the API.
// The password hash is excluded.
// swagger:model User
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Public converts a database row to its public projection.
func (u *UserDB) Public() *User {
	return &User{
		ID:        u.UserID.String(),
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
