package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/security"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rs/zerolog/log"
)

type projectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Company     string   `json:"company"`
	Roles       []string `json:"role"`
	TechStack   []string `json:"techStack"`
	URL         string   `json:"url"`
	Gradient    string   `json:"gradient"`
	StatusShow  bool     `json:"statusShow"`
}

func (r *projectRequest) sanitize() {
	r.Title = security.SanitizeInput(r.Title)
	r.Description = security.SanitizeInput(r.Description)
	r.Company = security.SanitizeInput(r.Company)
	for i, role := range r.Roles {
		r.Roles[i] = security.SanitizeInput(role)
	}
	for i, tech := range r.TechStack {
		r.TechStack[i] = security.SanitizeInput(tech)
	}
}

func (r *projectRequest) valid() bool {
	return r.Title != "" && r.Description != "" && r.Image != ""
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.cfg.Projects.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list projects")
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	if projects == nil {
		projects = []*models.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.sanitize()
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Company:     req.Company,
		Roles:       req.Roles,
		TechStack:   req.TechStack,
		URL:         req.URL,
		Gradient:    req.Gradient,
		StatusShow:  req.StatusShow,
	}

	if err := s.cfg.Projects.Create(r.Context(), project); err != nil {
		log.Error().Err(err).Msg("failed to create project")
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.sanitize()
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	project := &models.Project{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Company:     req.Company,
		Roles:       req.Roles,
		TechStack:   req.TechStack,
		URL:         req.URL,
		Gradient:    req.Gradient,
		StatusShow:  req.StatusShow,
	}

	if err := s.cfg.Projects.Update(r.Context(), project); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Error().Err(err).Msg("failed to update project")
		writeError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := s.cfg.Projects.Delete(r.Context(), projectID); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete project")
		writeError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
