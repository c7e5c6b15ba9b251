package ports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/ports"
)

func TestExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".venv"), ports.ExpandPath("~/.venv"))
	assert.Equal(t, "/etc/passwd", ports.ExpandPath("/etc/passwd"))
	assert.Equal(t, "relative/path", ports.ExpandPath("relative/path"))
	assert.Equal(t, "~", ports.ExpandPath("~"))
}
