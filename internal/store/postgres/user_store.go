package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rs/zerolog/log"
)

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a new PostgreSQL-backed user store.
// It shares the connection pool with the other stores.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{
		pool: pool,
	}
}

// GetByUsername retrieves a user by its unique username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u models.User
	err := s.pool.QueryRow(ctx, query, username).Scan(
		&u.UserID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", mapPostgresError(err))
	}

	return &u, nil
}

// Upsert creates the user or replaces its password hash.
func (s *UserStore) Upsert(ctx context.Context, user *models.User) error {
	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}

	now := time.Now()

	query := `
		INSERT INTO users (user_id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT ON CONSTRAINT users_username_key
		DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at
	`

	_, err := s.pool.Exec(ctx, query, user.UserID, user.Username, user.PasswordHash, now)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", mapPostgresError(err))
	}

	log.Debug().Str("username", user.Username).Msg("Upserted user")

	return nil
}
