package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the cookie carrying the session token.
const SessionCookieName = "session"

// NewSessionCookie builds the cookie carrying a freshly minted session
// token. The cookie lifetime matches the token TTL.
func NewSessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	}
}

// ExpiredSessionCookie overwrites the session cookie with an empty,
// immediately expired value. Used by logout, which is purely destructive.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	}
}
