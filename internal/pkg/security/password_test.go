package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, h.Verify("Secret123", hash))
	assert.False(t, h.Verify("secret123", hash))
	assert.False(t, h.Verify("", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 10, NewPasswordHasher(10).cost)
}

func TestPasswordHasher_VerifyGarbageHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("x", "not-a-bcrypt-hash"))
}
