package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarfaisal/snapshop/internal/config"
)

func TestLocalDriverPutOpenRemove(t *testing.T) {
	dir := t.TempDir()
	d := NewLocalDriver(dir)
	ctx := context.Background()

	key, url, err := d.Put(ctx, strings.NewReader("hello"), "media/2026/08/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "media/2026/08/a.jpg", key)
	assert.Equal(t, "/uploads/media/2026/08/a.jpg", url)

	f, err := d.Open(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hello", string(data))

	require.NoError(t, d.Remove(ctx, key))

	_, err = d.Open(ctx, key)
	assert.Error(t, err)

	// Empty parent directories are pruned but the base survives.
	_, err = os.Stat(filepath.Join(dir, "media"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestLocalDriverRemoveMissingIsNoop(t *testing.T) {
	d := NewLocalDriver(t.TempDir())
	assert.NoError(t, d.Remove(context.Background(), "media/ghost.jpg"))
}

func TestNewSelectsDriver(t *testing.T) {
	d, err := New(&config.StorageConfig{Driver: "local", UploadsPath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalDriver{}, d)

	d, err = New(&config.StorageConfig{})
	require.NoError(t, err)
	assert.IsType(t, &LocalDriver{}, d)

	_, err = New(&config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}

func TestContentTypeForKey(t *testing.T) {
	assert.Equal(t, "image/jpeg", contentTypeForKey("a.jpg"))
	assert.Equal(t, "image/jpeg", contentTypeForKey("a.jpeg"))
	assert.Equal(t, "image/png", contentTypeForKey("a.png"))
	assert.Equal(t, "image/webp", contentTypeForKey("a.webp"))
	assert.Equal(t, "image/gif", contentTypeForKey("a.gif"))
	assert.Equal(t, "video/mp4", contentTypeForKey("a.mp4"))
	assert.Equal(t, "application/octet-stream", contentTypeForKey("a.bin"))
}
