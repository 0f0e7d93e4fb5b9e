package apiclient

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestCheckTokenExpiry(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty token passes", func(t *testing.T) {
		assert.NoError(t, checkTokenExpiry("", now))
	})

	t.Run("opaque token passes", func(t *testing.T) {
		// не-JWT токен отдается серверу как есть.
		assert.NoError(t, checkTokenExpiry("opaque-api-key", now))
	})

	t.Run("future exp passes", func(t *testing.T) {
		token := signedToken(t, now.Add(time.Hour))
		assert.NoError(t, checkTokenExpiry(token, now))
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signedToken(t, now.Add(-time.Hour))
		assert.ErrorIs(t, checkTokenExpiry(token, now), ErrTokenExpired)
	})

	t.Run("token without exp passes", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		assert.NoError(t, checkTokenExpiry(signed, now))
	})
}
