package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-passphrase")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotContains(t, hash, "secret-passphrase")

	require.True(t, CheckPassword("secret-passphrase", hash))
	require.False(t, CheckPassword("wrong-passphrase", hash))
	require.False(t, CheckPassword("", hash))
}

func TestPasswordHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	// Per-call salt: two hashes of the same input differ, both verify
	require.NotEqual(t, h1, h2)
	require.True(t, CheckPassword("same-input", h1))
	require.True(t, CheckPassword("same-input", h2))
}

func TestCheckPasswordMutatedHash(t *testing.T) {
	hash, err := HashPassword("secret-passphrase")
	require.NoError(t, err)

	// Flip one byte anywhere in the stored hash and verification fails
	for i := 0; i < len(hash); i += 7 {
		mutated := []byte(hash)
		mutated[i] ^= 0x01
		require.False(t, CheckPassword("secret-passphrase", string(mutated)))
	}
}

func TestCheckPasswordMissingOrMalformedHash(t *testing.T) {
	// An account with no password set must verify false, never error
	require.False(t, CheckPassword("anything", ""))
	require.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	require.False(t, CheckPassword("", ""))
}
