package password

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, h.Verify("s3cret", hash))
	require.False(t, h.Verify("wrong", hash))
	require.False(t, h.Verify("s3cret", "not-a-bcrypt-hash"))
}

func TestHashesAreSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.True(t, h.Verify("same", first))
	require.True(t, h.Verify("same", second))
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	h := NewHasher(1000)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	require.True(t, h.Verify("s3cret", hash))
}
