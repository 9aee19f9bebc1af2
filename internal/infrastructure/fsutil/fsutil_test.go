package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFile(t *testing.T) {
	t.Run("removes existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "320x240.mp4")
		require.NoError(t, os.WriteFile(path, []byte("partial"), 0644))

		DeleteFile(path)

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing file is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			DeleteFile(filepath.Join(t.TempDir(), "missing.mp4"))
		})
	})
}

func TestDeleteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ab12cd34")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "original.mp4"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thumbnail.jpg"), []byte("x"), 0644))

	DeleteDir(dir)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	assert.NotPanics(t, func() { DeleteDir(dir) })
}
