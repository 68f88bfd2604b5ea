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

// ProjectStore implements store.ProjectStore using in-memory storage.
type ProjectStore struct {
	mu sync.RWMutex

	projects map[uuid.UUID]*models.Project
}

// NewProjectStore creates a new in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: make(map[uuid.UUID]*models.Project),
	}
}

// Create stores a new project.
func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if project.ProjectID == uuid.Nil {
		project.ProjectID = uuid.New()
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	clone := *project
	s.projects[project.ProjectID] = &clone
	return nil
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, exists := s.projects[projectID]
	if !exists {
		return nil, store.ErrProjectNotFound
	}

	clone := *project
	return &clone, nil
}

// List returns all projects, newest first.
func (s *ProjectStore) List(ctx context.Context) ([]*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		clone := *p
		projects = append(projects, &clone)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	return projects, nil
}

// Update replaces the stored project fields.
func (s *ProjectStore) Update(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.projects[project.ProjectID]
	if !exists {
		return store.ErrProjectNotFound
	}

	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now()

	clone := *project
	s.projects[project.ProjectID] = &clone
	return nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(ctx context.Context, projectID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[projectID]; !exists {
		return store.ErrProjectNotFound
	}

	delete(s.projects, projectID)
	return nil
}
