// internal/auth/password_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	t.Run("verifies the original password", func(t *testing.T) {
		hash, err := hasher.Hash("luana123")
		require.NoError(t, err)
		assert.NotEqual(t, "luana123", hash)
		assert.True(t, hasher.Verify(hash, "luana123"))
	})

	t.Run("rejects other passwords", func(t *testing.T) {
		hash, err := hasher.Hash("luana123")
		require.NoError(t, err)
		assert.False(t, hasher.Verify(hash, "luana124"))
		assert.False(t, hasher.Verify(hash, ""))
	})

	t.Run("rejects malformed hashes", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-bcrypt-hash", "luana123"))
	})
}
