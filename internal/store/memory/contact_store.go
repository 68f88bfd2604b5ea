package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/store"
)

// ContactStore implements store.ContactStore using in-memory storage.
type ContactStore struct {
	mu sync.RWMutex

	contacts map[uuid.UUID]*models.Contact
}

// NewContactStore creates a new in-memory contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[uuid.UUID]*models.Contact),
	}
}

// Create stores a new contact submission.
func (s *ContactStore) Create(ctx context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if contact.ContactID == uuid.Nil {
		contact.ContactID = uuid.New()
	}
	contact.CreatedAt = now
	contact.UpdatedAt = now

	clone := *contact
	s.contacts[contact.ContactID] = &clone
	return nil
}

// List returns all contact submissions, newest first.
func (s *ContactStore) List(ctx context.Context) ([]*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]*models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		clone := *c
		contacts = append(contacts, &clone)
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	return contacts, nil
}

// Update replaces the stored contact fields.
func (s *ContactStore) Update(ctx context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.contacts[contact.ContactID]
	if !exists {
		return store.ErrContactNotFound
	}

	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = time.Now()

	clone := *contact
	s.contacts[contact.ContactID] = &clone
	return nil
}

// Delete removes a contact by ID.
func (s *ContactStore) Delete(ctx context.Context, contactID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contacts[contactID]; !exists {
		return store.ErrContactNotFound
	}

	delete(s.contacts, contactID)
	return nil
}
