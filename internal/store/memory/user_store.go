package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/store"
)

// UserStore implements store.UserStore using in-memory storage.
// This implementation is for testing and development - data is lost on restart.
type UserStore struct {
	mu sync.RWMutex

	byUsername map[string]*models.User
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byUsername: make(map[string]*models.User),
	}
}

// GetByUsername retrieves a user by its unique username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.byUsername[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	// Clone to avoid external modifications
	clone := *user
	return &clone, nil
}

// Upsert creates the user or replaces its password hash.
func (s *UserStore) Upsert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.byUsername[user.Username]; ok {
		existing.PasswordHash = user.PasswordHash
		existing.UpdatedAt = now
		user.UserID = existing.UserID
		return nil
	}

	clone := *user
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.byUsername[user.Username] = &clone
	return nil
}
