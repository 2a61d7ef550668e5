package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	url, err := store.Put(context.Background(), "abc-face.png", content, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc-face.png", url)

	got, err := store.Get(context.Background(), "abc-face.png")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDiskStoreCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(base)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskStoreStripsPathComponents(t *testing.T) {
	base := t.TempDir()
	store, err := NewDiskStore(base)
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "../escape.png", []byte("data"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/escape.png", url)

	_, err = os.Stat(filepath.Join(base, "escape.png"))
	assert.NoError(t, err)
}

func TestDiskStoreGetMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "nope.png")
	assert.Error(t, err)
}

func TestDiskStoreRequiresPath(t *testing.T) {
	_, err := NewDiskStore("")
	assert.Error(t, err)
}
