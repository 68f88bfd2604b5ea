package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rmarchant/folio/internal/auth"
	"github.com/rmarchant/folio/internal/logger"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/security"
)

type SeedCmd struct {
	Username string `help:"admin username" default:"admin" env:"FOLIO_SEED_USERNAME"`
	Password string `help:"admin password" required:"" env:"FOLIO_SEED_PASSWORD"`

	SkipProjects bool `help:"skip creating sample projects" default:"false"`

	BcryptCost int `help:"bcrypt work factor for password digests" default:"12" env:"FOLIO_BCRYPT_COST"`

	Store StoreFlags `embed:""`
}

func (c *SeedCmd) Validate() error {
	if errs := security.ValidatePasswordStrength(c.Password); len(errs) > 0 {
		return fmt.Errorf("weak admin password: %s", errs[0].Message)
	}
	return nil
}

func (c *SeedCmd) Run(globals *Globals) error {
	log := logger.Setup(globals.Debug)
	ctx := context.Background()

	hasher, err := auth.NewHasher(c.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to configure password hashing: %w", err)
	}

	stores, err := c.Store.openStores(ctx)
	if err != nil {
		return err
	}
	defer stores.Close()

	digest, err := hasher.Hash(c.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		UserID:       uuid.New(),
		Username:     c.Username,
		PasswordHash: digest,
	}
	if err := stores.Users.Upsert(ctx, user); err != nil {
		return fmt.Errorf("failed to upsert admin user: %w", err)
	}
	log.Info().Str("username", c.Username).Msg("Admin user created")

	if c.SkipProjects {
		return nil
	}

	for _, project := range sampleProjects() {
		if err := stores.Projects.Create(ctx, project); err != nil {
			return fmt.Errorf("failed to create sample project %q: %w", project.Title, err)
		}
		log.Info().Str("title", project.Title).Msg("Sample project created")
	}

	return nil
}

func sampleProjects() []*models.Project {
	return []*models.Project{
		{
			Title:       "E-commerce Website",
			Description: "Modern e-commerce platform built with Next.js and Stripe integration",
			Image:       "https://via.placeholder.com/400x300?text=E-commerce",
			StatusShow:  true,
		},
		{
			Title:       "Task Management App",
			Description: "Collaborative task management application with real-time updates",
			Image:       "https://via.placeholder.com/400x300?text=Task+Management",
			StatusShow:  true,
		},
		{
			Title:       "Blog Platform",
			Description: "Content management system for blogging with rich text editor",
			Image:       "https://via.placeholder.com/400x300?text=Blog+Platform",
			StatusShow:  true,
		},
	}
}
