package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "accounts", `[{"id":"1"}]`))

	got, found, err := store.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accounts", "first"))
	require.NoError(t, store.Set(ctx, "accounts", "second"))

	got, _, err := store.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "accounts", "data"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "accounts.json", entries[0].Name())
}

func TestFileStoreCreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "accounts", "blob"))

	got, found, err := store.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "blob", got)
}

func TestMemoryStoreFailSet(t *testing.T) {
	store := NewMemoryStore()
	store.FailSet = errors.New("disk full")

	err := store.Set(context.Background(), "accounts", "blob")
	require.Error(t, err)

	_, found, err := store.Get(context.Background(), "accounts")
	require.NoError(t, err)
	assert.False(t, found, "failed Set must not store anything")
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = fileStore.Get(ctx, "accounts")
	require.Error(t, err)
	require.Error(t, fileStore.Set(ctx, "accounts", "x"))

	memStore := NewMemoryStore()
	_, _, err = memStore.Get(ctx, "accounts")
	require.Error(t, err)
	require.Error(t, memStore.Set(ctx, "accounts", "x"))
}
