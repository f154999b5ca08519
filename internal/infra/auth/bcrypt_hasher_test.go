package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerhub/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("Abcdef1!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "Abcdef1!")

	assert.True(t, hasher.Check("Abcdef1!", hash))
	assert.False(t, hasher.Check("abcdef1!", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	first, err := hasher.Hash("Abcdef1!")
	require.NoError(t, err)
	second, err := hasher.Hash("Abcdef1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 10}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Abcdef1!")
	require.NoError(t, err)
	// bcrypt encodes the cost in the digest prefix.
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
}
