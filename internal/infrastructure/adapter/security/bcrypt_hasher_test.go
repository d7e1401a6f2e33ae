package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	t.Run("Hash and verify round trip", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-password")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-password", hash)

		assert.True(t, hasher.Verify(hash, "s3cret-password"))
	})

	t.Run("Wrong password fails verification", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-password")
		require.NoError(t, err)

		assert.False(t, hasher.Verify(hash, "wrong-password"))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("same-password")
		require.NoError(t, err)
		second, err := hasher.Hash("same-password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify(first, "same-password"))
		assert.True(t, hasher.Verify(second, "same-password"))
	})

	t.Run("Garbage hash never verifies", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-bcrypt-hash", "anything"))
	})
}
