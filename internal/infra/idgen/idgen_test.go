package idgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUUIDGeneratesUniqueIDs(t *testing.T) {
	gen := NewUUID()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NextID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequenceIsPrefixedAndMonotonic(t *testing.T) {
	gen := NewSequence("dish-")

	require.Equal(t, "dish-1", gen.NextID())
	require.Equal(t, "dish-2", gen.NextID())
	require.Equal(t, "dish-3", gen.NextID())
}
