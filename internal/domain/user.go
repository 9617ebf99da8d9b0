package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password is stored only as a bcrypt
// hash; it must never appear in any response body.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the subset of User exposed in auth responses.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the response-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username, Email: u.Email}
}

// UserRepository persists user accounts. Email uniqueness is enforced by
// the store itself, not by callers.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
