package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordManager(t *testing.T) {
	t.Parallel()

	// MinCost keeps the tests fast; production uses the configured cost.
	mgr := NewBcryptPasswordManager(bcrypt.MinCost)

	t.Run("hash and compare round-trip", func(t *testing.T) {
		t.Parallel()
		hash, err := mgr.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash)

		assert.NoError(t, mgr.Compare(hash, "correct horse battery staple"))
	})

	t.Run("compare rejects wrong password", func(t *testing.T) {
		t.Parallel()
		hash, err := mgr.Hash("right-password")
		require.NoError(t, err)

		assert.Error(t, mgr.Compare(hash, "wrong-password"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		t.Parallel()
		first, err := mgr.Hash("repeated")
		require.NoError(t, err)
		second, err := mgr.Hash("repeated")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("zero cost selects bcrypt default", func(t *testing.T) {
		t.Parallel()
		def := NewBcryptPasswordManager(0)
		assert.Equal(t, bcrypt.DefaultCost, def.cost)
	})
}
