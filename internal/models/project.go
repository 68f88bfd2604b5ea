package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown on the public site and managed from the dashboard.
type Project struct {
	ProjectID uuid.UUID `json:"id"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Company     string   `json:"company,omitempty"`
	Roles       []string `json:"role,omitempty"`
	TechStack   []string `json:"techStack,omitempty"`
	URL         string   `json:"url,omitempty"`
	Gradient    string   `json:"gradient,omitempty"`

	// StatusShow controls whether the project appears on the public site.
	StatusShow bool `json:"statusShow"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
