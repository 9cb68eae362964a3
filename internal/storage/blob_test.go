package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorePutAndURL(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "avatars/7.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/media/avatars/7.jpg", url)
	assert.Equal(t, url, store.URL("avatars/7.jpg"))

	data, err := os.ReadFile(filepath.Join(store.baseDir, "avatars", "7.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDiskStorePutOverwrites(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "https://cdn.example.com/media")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Put(ctx, "avatars/7.jpg", []byte("old"), "image/jpeg")
	require.NoError(t, err)
	url, err := store.Put(ctx, "avatars/7.jpg", []byte("new"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/avatars/7.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.baseDir, "avatars", "7.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestDiskStoreDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Put(ctx, "avatars/9.png", []byte("png"), "image/png")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "avatars/9.png"))

	_, err = os.Stat(filepath.Join(store.baseDir, "avatars", "9.png"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, "avatars/9.png"))
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)

	// Path traversal collapses inside the base dir rather than escaping it.
	full, err := store.path("../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(full, store.baseDir))
}
