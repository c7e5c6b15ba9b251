package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/adapters/filesystem"
)

func TestReal_ReadWrite(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewReal()
	path := filepath.Join(t.TempDir(), "config.txt")

	require.NoError(t, fs.WriteFile(path, []byte("dtparam=i2c_arm=on\n"), 0o644))
	assert.True(t, fs.Exists(path))
	assert.False(t, fs.IsDir(path))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dtparam=i2c_arm=on\n", string(data))
}

func TestReal_MkdirAllAndRemove(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewReal()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fs.MkdirAll(dir, 0o755))
	assert.True(t, fs.IsDir(dir))

	require.NoError(t, fs.Remove(dir))
	assert.False(t, fs.Exists(dir))
}

func TestReal_MissingFile(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewReal()
	path := filepath.Join(t.TempDir(), "absent")

	assert.False(t, fs.Exists(path))
	_, err := fs.ReadFile(path)
	assert.True(t, os.IsNotExist(err))
}

