package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/consolekit/consoleauth/token"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestInspect(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	t.Run("extracts registered claims", func(t *testing.T) {
		raw := signedToken(t, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "com.console.login",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})

		inspection, err := token.Inspect(raw)
		require.NoError(t, err)
		require.Equal(t, "user-1", inspection.Subject)
		require.Equal(t, "com.console.login", inspection.Issuer)
		require.Equal(t, now.Unix(), inspection.IssuedAt.Unix())
		require.Equal(t, now.Add(time.Hour).Unix(), inspection.ExpiresAt.Unix())
	})

	t.Run("expired tokens still inspect", func(t *testing.T) {
		raw := signedToken(t, jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		})

		inspection, err := token.Inspect(raw)
		require.NoError(t, err)
		require.True(t, inspection.Expired(now))
	})

	t.Run("tokens without exp never report expired", func(t *testing.T) {
		raw := signedToken(t, jwt.RegisteredClaims{Subject: "user-1"})

		inspection, err := token.Inspect(raw)
		require.NoError(t, err)
		require.False(t, inspection.Expired(now))
	})

	t.Run("opaque tokens fail to parse", func(t *testing.T) {
		_, err := token.Inspect("not-a-jwt")
		require.Error(t, err)
	})
}
