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

// ProjectStore implements store.ProjectStore using PostgreSQL.
type ProjectStore struct {
	pool *pgxpool.Pool
}

// NewProjectStore creates a new PostgreSQL-backed project store.
func NewProjectStore(pool *pgxpool.Pool) *ProjectStore {
	return &ProjectStore{
		pool: pool,
	}
}

// Create inserts a new project.
func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	if project.ProjectID == uuid.Nil {
		project.ProjectID = uuid.New()
	}

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT INTO projects (
			project_id, title, description, image, company,
			roles, tech_stack, url, gradient, status_show,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	_, err := s.pool.Exec(ctx, query,
		project.ProjectID,
		project.Title,
		project.Description,
		project.Image,
		project.Company,
		project.Roles,
		project.TechStack,
		project.URL,
		project.Gradient,
		project.StatusShow,
		project.CreatedAt,
		project.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("project_id", project.ProjectID.String()).
		Str("title", project.Title).
		Msg("Created project")

	return nil
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := `
		SELECT
			project_id, title, description, image, company,
			roles, tech_stack, url, gradient, status_show,
			created_at, updated_at
		FROM projects
		WHERE project_id = $1
	`

	var p models.Project
	err := s.pool.QueryRow(ctx, query, projectID).Scan(
		&p.ProjectID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.Company,
		&p.Roles,
		&p.TechStack,
		&p.URL,
		&p.Gradient,
		&p.StatusShow,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", mapPostgresError(err))
	}

	return &p, nil
}

// List returns all projects, newest first.
func (s *ProjectStore) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT
			project_id, title, description, image, company,
			roles, tech_stack, url, gradient, status_show,
			created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", mapPostgresError(err))
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ProjectID,
			&p.Title,
			&p.Description,
			&p.Image,
			&p.Company,
			&p.Roles,
			&p.TechStack,
			&p.URL,
			&p.Gradient,
			&p.StatusShow,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// Update replaces the stored project fields.
func (s *ProjectStore) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	query := `
		UPDATE projects SET
			title = $2,
			description = $3,
			image = $4,
			company = $5,
			roles = $6,
			tech_stack = $7,
			url = $8,
			gradient = $9,
			status_show = $10,
			updated_at = $11
		WHERE project_id = $1
	`

	result, err := s.pool.Exec(ctx, query,
		project.ProjectID,
		project.Title,
		project.Description,
		project.Image,
		project.Company,
		project.Roles,
		project.TechStack,
		project.URL,
		project.Gradient,
		project.StatusShow,
		project.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update project: %w", mapPostgresError(err))
	}

	if result.RowsAffected() == 0 {
		return store.ErrProjectNotFound
	}

	log.Debug().
		Str("project_id", project.ProjectID.String()).
		Msg("Updated project")

	return nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(ctx context.Context, projectID uuid.UUID) error {
	query := `DELETE FROM projects WHERE project_id = $1`

	result, err := s.pool.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", mapPostgresError(err))
	}

	if result.RowsAffected() == 0 {
		return store.ErrProjectNotFound
	}

	log.Debug().
		Str("project_id", projectID.String()).
		Msg("Deleted project")

	return nil
}
