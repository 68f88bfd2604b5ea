package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rmarchant/folio/internal/auth"
	httpmiddleware "github.com/rmarchant/folio/internal/http"
	"github.com/rmarchant/folio/internal/security"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rs/zerolog/log"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin verifies credentials and issues the session cookie.
// Unknown usernames, wrong passwords and credential store failures all
// produce the same generic outcome so usernames cannot be enumerated.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	clientID := httpmiddleware.ClientIPFromContext(r.Context())

	if d := s.cfg.Limiter.Admit(clientID); !d.Allowed {
		log.Warn().Str("client", clientID).Msg("login throttled")
		w.Header().Set("Retry-After", strconv.Itoa(d.RetryAfter))
		writeError(w, http.StatusTooManyRequests, "Too many attempts. Try again later.")
		return
	}

	var req loginRequest
	// The login page submits url-encoded form data when scripting is
	// unavailable; API clients post JSON.
	if strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username := security.SanitizeInput(req.Username)
	password := security.SanitizeInput(req.Password)

	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := s.cfg.Users.GetByUsername(r.Context(), username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			// Fail closed: a store fault looks like bad credentials to the
			// client but is logged for operators.
			log.Error().Err(err).Msg("credential store lookup failed")
		}
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !s.cfg.Hasher.Verify(password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// One success forgives all prior failed attempts from this client.
	s.cfg.Limiter.Reset(clientID)

	token, err := s.cfg.Codec.Mint(user.UserID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to mint session token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, auth.NewSessionCookie(token, s.cfg.Codec.TTL(), s.cfg.SecureCookies))

	log.Info().Str("username", user.Username).Msg("login successful")

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    map[string]string{"username": user.Username},
	})
}

// handleLogout overwrites the session cookie with an expired value. It is
// purely destructive and never inspects the existing token.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ExpiredSessionCookie(s.cfg.SecureCookies))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
