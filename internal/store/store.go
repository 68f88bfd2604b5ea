package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rmarchant/folio/internal/models"
)

// Sentinel errors for common error conditions
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrProjectNotFound   = errors.New("project not found")
	ErrContactNotFound   = errors.New("contact not found")
)

// UserStore is the credential store adapter. Lookup failures must never be
// surfaced to clients in a way that distinguishes them from bad credentials.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Upsert creates the user or replaces its password hash. Used by the
	// out-of-band seeding step, never by the login flow.
	Upsert(ctx context.Context, user *models.User) error
}

// ProjectStore manages portfolio entries.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	Get(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// ContactStore manages contact form submissions.
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, contactID uuid.UUID) error
}
