package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemID_IsUUIDv7(t *testing.T) {
	t.Parallel()

	id, err := NewItemID()
	require.NoError(t, err)

	u, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
}

func TestNewItemID_NoCollisions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id, err := NewItemID()
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
