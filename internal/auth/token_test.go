package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-min-32-bytes-long!")

func newTestCodec(t *testing.T, ttl time.Duration) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testSecret, ttl)
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodec(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		codec, err := NewTokenCodec(nil, time.Hour)
		require.Error(t, err)
		require.Nil(t, codec)
	})

	t.Run("short secret", func(t *testing.T) {
		codec, err := NewTokenCodec([]byte("too-short"), time.Hour)
		require.Error(t, err)
		require.Nil(t, codec)
	})

	t.Run("non-positive TTL", func(t *testing.T) {
		codec, err := NewTokenCodec(testSecret, 0)
		require.Error(t, err)
		require.Nil(t, codec)
	})

	t.Run("valid config", func(t *testing.T) {
		codec, err := NewTokenCodec(testSecret, time.Hour)
		require.NoError(t, err)
		require.NotNil(t, codec)
		require.Equal(t, time.Hour, codec.TTL())
	})
}

func TestTokenRoundTrip(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	userID := uuid.New()

	token, err := codec.Mint(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID())
	require.Equal(t, "admin", claims.Username)
}

func TestTokenExpiryBoundary(t *testing.T) {
	const ttl = 3600 * time.Second

	codec := newTestCodec(t, ttl)
	minted := time.Now()
	codec.now = func() time.Time { return minted }

	token, err := codec.Mint(uuid.New(), "admin")
	require.NoError(t, err)

	t.Run("valid one second before expiry", func(t *testing.T) {
		codec.now = func() time.Time { return minted.Add(ttl - time.Second) }
		_, err := codec.Verify(token)
		require.NoError(t, err)
	})

	t.Run("invalid at the exact expiry second", func(t *testing.T) {
		codec.now = func() time.Time { return minted.Add(ttl) }
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrExpiredSession)
	})

	t.Run("invalid after expiry", func(t *testing.T) {
		codec.now = func() time.Time { return minted.Add(ttl + time.Minute) }
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrExpiredSession)
	})
}

func TestTokenTamperRejection(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	token, err := codec.Mint(uuid.New(), "admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	mutate := func(s string, i int) string {
		replacement := byte('A')
		if s[i] == replacement {
			replacement = 'B'
		}
		return s[:i] + string(replacement) + s[i+1:]
	}

	t.Run("corrupted payload", func(t *testing.T) {
		for i := range parts[1] {
			tampered := parts[0] + "." + mutate(parts[1], i) + "." + parts[2]
			_, err := codec.Verify(tampered)
			require.Error(t, err, "payload position %d", i)
		}
	})

	t.Run("corrupted signature", func(t *testing.T) {
		// The final character carries base64 padding bits, so two encodings
		// can decode to the same signature bytes; skip it.
		for i := 0; i < len(parts[2])-1; i++ {
			tampered := parts[0] + "." + parts[1] + "." + mutate(parts[2], i)
			_, err := codec.Verify(tampered)
			require.Error(t, err, "signature position %d", i)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := codec.Verify("not.a.token")
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestTokenWrongKeyRejection(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	other, err := NewTokenCodec([]byte("another-secret-key-32-bytes-long!"), time.Hour)
	require.NoError(t, err)

	token, err := codec.Mint(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestTokenAlgorithmRejection(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	claims := &SessionClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("different HMAC variant", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestTokenClaimShapeRejection(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	sign := func(t *testing.T, claims jwt.Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		require.NoError(t, err)
		return token
	}

	t.Run("missing username", func(t *testing.T) {
		token := sign(t, &jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("subject is not a UUID", func(t *testing.T) {
		token := sign(t, &SessionClaims{
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token := sign(t, &SessionClaims{
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: uuid.NewString(),
			},
		})
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}
