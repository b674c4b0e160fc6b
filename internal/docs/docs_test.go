package docs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"actions", "keys", "storage"}, Topics())
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" Keys ")
	require.True(t, ok)
	require.Contains(t, body, "# TUI keys")

	for _, bad := range []string{"", "nope", "../docs", "keys.md"} {
		_, ok := Get(bad)
		require.False(t, ok, bad)
	}
}
