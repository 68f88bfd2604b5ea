package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ContactID uuid.UUID `json:"id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
