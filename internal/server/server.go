// Package server exposes the JSON API: authentication, project and contact
// management, and the public skills catalogue.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/rmarchant/folio/internal/auth"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rmarchant/folio/internal/website"
	"github.com/rs/zerolog/log"
)

// Config carries the collaborators the API server needs.
type Config struct {
	Users    store.UserStore
	Projects store.ProjectStore
	Contacts store.ContactStore

	Codec   *auth.TokenCodec
	Gate    *auth.SessionGate
	Hasher  *auth.Hasher
	Limiter *auth.Limiter

	Skills []website.Skill

	// SecureCookies marks session cookies Secure. Enabled in production.
	SecureCookies bool
}

// Server handles the /api namespace.
type Server struct {
	cfg Config
}

// New creates the API server.
func New(cfg Config) *Server {
	return &Server{cfg: cfg}
}

// Handler returns the API route table. Protected routes enforce the session
// per endpoint via the gate's RequireSession middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	protected := s.cfg.Gate.RequireSession()

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.Handle("POST /api/projects", protected(http.HandlerFunc(s.handleCreateProject)))
	mux.Handle("PUT /api/projects/{id}", protected(http.HandlerFunc(s.handleUpdateProject)))
	mux.Handle("DELETE /api/projects/{id}", protected(http.HandlerFunc(s.handleDeleteProject)))

	mux.HandleFunc("POST /api/contact", s.handleCreateContact)
	mux.Handle("GET /api/contact", protected(http.HandlerFunc(s.handleListContacts)))
	mux.Handle("PUT /api/contact/{id}", protected(http.HandlerFunc(s.handleUpdateContact)))
	mux.Handle("DELETE /api/contact/{id}", protected(http.HandlerFunc(s.handleDeleteContact)))

	mux.HandleFunc("GET /api/skills", s.handleListSkills)

	return mux
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills := s.cfg.Skills
	if skills == nil {
		skills = []website.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
