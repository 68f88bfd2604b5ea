package http

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const clientIPContextKey contextKey = "client_ip"

// UnknownClient is the identity assigned to requests that carry no
// forwarded-IP header. All such requests share a single rate-limit bucket.
const UnknownClient = "unknown"

// ExtractClientIP extracts the client identity from the request.
// Checks X-Forwarded-For first (for proxied requests), then X-Real-IP,
// and falls back to the shared "unknown" identity.
func ExtractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first IP in the list (comma-separated)
		if before, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(before)
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return UnknownClient
}

// ClientIPFromContext extracts the client IP from the request context.
// This should be called from handlers wrapped by ClientIPMiddleware.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPContextKey).(string)
	if ip == "" {
		return UnknownClient
	}
	return ip
}

// ClientIPMiddleware is a middleware that extracts and stores the client IP in the request context.
// This allows the IP to be used for rate limiting and audit logging.
func ClientIPMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ExtractClientIP(r)
			ctx := context.WithValue(r.Context(), clientIPContextKey, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SecurityHeaders is a middleware that sets defensive response headers on
// API responses.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	}
}
