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

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *contactRequest) sanitize() {
	r.Name = security.SanitizeInput(r.Name)
	r.Email = security.SanitizeInput(r.Email)
	r.Message = security.SanitizeInput(r.Message)
}

func (r *contactRequest) valid() bool {
	return r.Name != "" && r.Email != "" && r.Message != ""
}

// handleCreateContact accepts a public contact form submission.
func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.sanitize()
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.cfg.Contacts.Create(r.Context(), contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact")
		writeError(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.cfg.Contacts.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list contacts")
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact data")
		return
	}

	if contacts == nil {
		contacts = []*models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.sanitize()
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	contact := &models.Contact{
		ContactID: contactID,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
	}

	if err := s.cfg.Contacts.Update(r.Context(), contact); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found")
			return
		}
		log.Error().Err(err).Msg("failed to update contact")
		writeError(w, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := s.cfg.Contacts.Delete(r.Context(), contactID); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete contact")
		writeError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}
