package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotBackends(t *testing.T) map[string]Slot {
	t.Helper()
	ctx := context.Background()

	fs, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)
	sq, err := OpenSQLiteSlot(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]Slot{
		BackendFile:   fs,
		BackendSQLite: sq,
		BackendMemory: NewMemorySlot(),
	}
}

func TestSlot_GetSetOverwrite(t *testing.T) {
	t.Parallel()

	for name, slot := range slotBackends(t) {
		slot := slot
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			_, ok, err := slot.Get(ctx, StateKey)
			require.NoError(t, err)
			assert.False(t, ok, "fresh slot must be empty")

			require.NoError(t, slot.Set(ctx, StateKey, []byte(`{"todoItems":[]}`)))
			require.NoError(t, slot.Set(ctx, StateKey, []byte(`{"todoItems":[{"id":"a","title":"A","done":false}]}`)))

			got, ok, err := slot.Get(ctx, StateKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `{"todoItems":[{"id":"a","title":"A","done":false}]}`, string(got))

			_, ok, err = slot.Get(ctx, "otherKey")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileSlot_WritesKeyFileWithoutTempLeftovers(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	s, err := NewFileSlot(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), StateKey, []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StateKey+".json", entries[0].Name())
}

func TestFileSlot_RejectsPathKeys(t *testing.T) {
	t.Parallel()

	s, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)
	for _, k := range []string{"", "../x", `a\b`, ".."} {
		assert.Error(t, s.Set(context.Background(), k, []byte("{}")), k)
	}

	_, err = NewFileSlot("  ")
	assert.Error(t, err)
}

func TestSQLiteSlot_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	s1, err := OpenSQLiteSlot(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, StateKey, []byte(`{"todoItems":[]}`)))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLiteSlot(ctx, dir)
	require.NoError(t, err)
	defer s2.Close()
	got, ok, err := s2.Get(ctx, StateKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"todoItems":[]}`, string(got))
	assert.FileExists(t, filepath.Join(dir, sqliteFileName))
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemorySlot()
	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'z'

	got, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestOpenSlot_SelectsBackend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSlot(ctx, Config{Dir: dir})
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, s)

	s, err = OpenSlot(ctx, Config{Dir: dir, Backend: "SQLite"})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSlot{}, s)
	require.NoError(t, s.Close())

	s, err = OpenSlot(ctx, Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemorySlot{}, s)

	_, err = OpenSlot(ctx, Config{Dir: dir, Backend: "redis"})
	assert.Error(t, err)
}
