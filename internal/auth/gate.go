package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type contextKey string

const sessionContextKey contextKey = "session"

// ClaimsFromContext extracts the verified session claims from the request
// context. This should be called from handlers behind the gate or
// RequireSession middleware.
func ClaimsFromContext(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(sessionContextKey).(*SessionClaims)
	return claims, ok
}

// SessionGate decides per request whether a valid session is present and
// redirects or blocks accordingly. It holds no cross-request mutable state.
type SessionGate struct {
	codec *TokenCodec

	protectedPrefixes []string
	loginPath         string
	landingPath       string
}

// NewSessionGate creates a gate protecting the dashboard tree. Requests to
// the login page while already authenticated are redirected to the landing
// path.
func NewSessionGate(codec *TokenCodec) *SessionGate {
	return &SessionGate{
		codec:             codec,
		protectedPrefixes: []string{"/dashboard"},
		loginPath:         "/login",
		landingPath:       "/dashboard",
	}
}

// sessionFromRequest extracts and verifies the session cookie. A missing
// cookie and an invalid or expired token are deliberately indistinguishable.
func (g *SessionGate) sessionFromRequest(r *http.Request) (*SessionClaims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return g.codec.Verify(cookie.Value)
}

// Middleware returns the page-routing gate. Protected paths without a valid
// session redirect to the login page; the login page with a valid session
// redirects to the landing path; all other paths pass through unchanged.
func (g *SessionGate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == g.loginPath {
				if _, err := g.sessionFromRequest(r); err == nil {
					http.Redirect(w, r, g.landingPath, http.StatusFound)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if g.isProtected(r.URL.Path) {
				claims, err := g.sessionFromRequest(r)
				if err != nil {
					log.Debug().Str("path", r.URL.Path).Msg("no valid session, redirecting to login")
					http.Redirect(w, r, g.loginPath, http.StatusFound)
					return
				}

				ctx := context.WithValue(r.Context(), sessionContextKey, claims)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession returns a middleware for API routes. Requests without a
// valid session receive a generic 401 instead of a redirect.
func (g *SessionGate) RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := g.sessionFromRequest(r)
			if err != nil {
				log.Debug().Str("path", r.URL.Path).Msg("unauthorized api request")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (g *SessionGate) isProtected(path string) bool {
	for _, prefix := range g.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
