package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret")

	token, err := tokens.Create(42, "a@x.com", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := tokens.Verify(token)
	require.NotNil(t, claims)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "Ada", claims.Name)
	require.WithinDuration(t, time.Now().Add(UserTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenExpired(t *testing.T) {
	tokens := &Tokens{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := tokens.Create(1, "a@x.com", "")
	require.NoError(t, err)

	// Already past its expiry instant
	require.Nil(t, tokens.Verify(token))
}

func TestTokenTampered(t *testing.T) {
	tokens := NewTokens("test-secret")

	token, err := tokens.Create(1, "a@x.com", "")
	require.NoError(t, err)

	// Corrupt the signature segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	require.Nil(t, tokens.Verify(tampered))

	// Garbage and empty input
	require.Nil(t, tokens.Verify("not-a-token"))
	require.Nil(t, tokens.Verify(""))
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokens("secret-one").Create(1, "a@x.com", "")
	require.NoError(t, err)

	require.Nil(t, NewTokens("secret-two").Verify(token))
}
