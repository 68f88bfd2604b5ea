package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an administrative account that can sign in to the dashboard.
// PasswordHash is a bcrypt digest; the plaintext password is never stored.
type User struct {
	UserID   uuid.UUID
	Username string // unique

	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
