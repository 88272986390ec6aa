package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	require.True(t, CheckPasswordHash("s3cret-password", hash))
	require.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPasswordFreshSalt(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	// Digests are never directly comparable; only CheckPasswordHash decides
	require.NotEqual(t, h1, h2)
	require.True(t, CheckPasswordHash("same-input", h1))
	require.True(t, CheckPasswordHash("same-input", h2))
}

func TestCheckPasswordHashMalformedDigest(t *testing.T) {
	require.False(t, CheckPasswordHash("anything", ""))
	require.False(t, CheckPasswordHash("anything", "not-a-bcrypt-digest"))
}
