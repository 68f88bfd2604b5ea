package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultSessionTTL is the lifetime of an issued session token.
	DefaultSessionTTL = time.Hour

	tokenIssuer = "folio"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session expired")
)

// SessionClaims is the payload carried inside a session token. Tokens whose
// decoded payload does not match this shape are rejected.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a UUID.
func (c *SessionClaims) UserID() uuid.UUID {
	id, _ := uuid.Parse(c.Subject)
	return id
}

// TokenCodec mints and verifies HMAC-signed session tokens. The signing key
// is process-wide configuration, immutable after construction.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a session token codec. A missing or short secret is
// a configuration failure: the caller must refuse to serve traffic.
func NewTokenCodec(secret []byte, ttl time.Duration) (*TokenCodec, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("session secret must be at least 32 bytes")
	}

	if ttl <= 0 {
		return nil, fmt.Errorf("session TTL must be greater than 0")
	}

	return &TokenCodec{secret: secret, ttl: ttl, now: time.Now}, nil
}

// TTL returns the token lifetime, used for the session cookie Max-Age.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Mint creates a signed session token for the given user.
func (c *TokenCodec) Mint(userID uuid.UUID, username string) (string, error) {
	now := c.now()
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks the token signature and expiry and returns the claims.
// Only HS256 tokens are accepted; any other algorithm is rejected. A token
// is invalid at the exact expiry second.
func (c *TokenCodec) Verify(tokenString string) (*SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	parsed, err := parser.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	// Enforce the expected claim shape.
	if claims.Username == "" {
		return nil, ErrInvalidSession
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
