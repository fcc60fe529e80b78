package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFileStorage(t *testing.T) *FileStorage {
	t.Helper()
	store, err := NewFileStorage(filepath.Join(t.TempDir(), "lists", "items.json"))
	require.NoError(t, err)
	return store
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestFileStorage_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	store := createTestFileStorage(t)

	require.NoError(t, store.SaveItems(ctx, testItems(t)))
	require.NoError(t, store.SaveItems(ctx, nil))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.json", entries[0].Name())
}

func TestFileStorage_FailedSaveKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	store := createTestFileStorage(t)
	items := testItems(t)
	require.NoError(t, store.SaveItems(ctx, items))

	// A directory in place of the target makes the rename fail.
	blocked := &FileStorage{path: filepath.Dir(store.Path())}
	assert.Error(t, blocked.SaveItems(ctx, items[:1]))

	loaded, err := store.LoadItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestNewFileStorage_EmptyPath(t *testing.T) {
	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
