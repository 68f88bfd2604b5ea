package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rs/zerolog/log"
)

// ContactStore implements store.ContactStore using PostgreSQL.
type ContactStore struct {
	pool *pgxpool.Pool
}

// NewContactStore creates a new PostgreSQL-backed contact store.
func NewContactStore(pool *pgxpool.Pool) *ContactStore {
	return &ContactStore{
		pool: pool,
	}
}

// Create inserts a new contact submission.
func (s *ContactStore) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ContactID == uuid.Nil {
		contact.ContactID = uuid.New()
	}

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	query := `
		INSERT INTO contacts (contact_id, name, email, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		contact.ContactID,
		contact.Name,
		contact.Email,
		contact.Message,
		contact.CreatedAt,
		contact.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create contact: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("contact_id", contact.ContactID.String()).
		Msg("Created contact")

	return nil
}

// List returns all contact submissions, newest first.
func (s *ContactStore) List(ctx context.Context) ([]*models.Contact, error) {
	query := `
		SELECT contact_id, name, email, message, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", mapPostgresError(err))
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		var c models.Contact
		err := rows.Scan(
			&c.ContactID,
			&c.Name,
			&c.Email,
			&c.Message,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}

// Update replaces the stored contact fields. The update runs inside a
// transaction that first confirms the row exists.
func (s *ContactStore) Update(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapPostgresError(err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is safe to call after commit

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM contacts WHERE contact_id = $1)`, contact.ContactID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check contact: %w", mapPostgresError(err))
	}
	if !exists {
		return store.ErrContactNotFound
	}

	query := `
		UPDATE contacts SET
			name = $2,
			email = $3,
			message = $4,
			updated_at = $5
		WHERE contact_id = $1
	`

	_, err = tx.Exec(ctx, query,
		contact.ContactID,
		contact.Name,
		contact.Email,
		contact.Message,
		contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", mapPostgresError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit contact update: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("contact_id", contact.ContactID.String()).
		Msg("Updated contact")

	return nil
}

// Delete removes a contact by ID.
func (s *ContactStore) Delete(ctx context.Context, contactID uuid.UUID) error {
	query := `DELETE FROM contacts WHERE contact_id = $1`

	result, err := s.pool.Exec(ctx, query, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", mapPostgresError(err))
	}

	if result.RowsAffected() == 0 {
		return store.ErrContactNotFound
	}

	log.Debug().
		Str("contact_id", contactID.String()).
		Msg("Deleted contact")

	return nil
}
