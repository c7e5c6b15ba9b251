package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/domain/config"
)

const validYAML = `
host:
  user: bracketbot
apt:
  packages: [git, i2c-tools]
boot:
  i2c: true
  uart: true
hotspot:
  ssid: bracketbot-ap
  passphrase: bracketbot
python:
  min_uv_version: "0.4.0"
service:
  name: bracketbot
  exec: /home/bracketbot/.venv/bin/python -m bracketbot
  workdir: /home/bracketbot/bracketbot
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid config with defaults applied", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse([]byte(validYAML), "bringup.yaml")
		require.NoError(t, err)

		assert.Equal(t, "bracketbot", cfg.Host.User)
		assert.Equal(t, []string{"git", "i2c-tools"}, cfg.Apt.Packages)
		assert.True(t, cfg.Boot.I2C)
		assert.False(t, cfg.Boot.SPI)

		// Defaults.
		assert.Equal(t, "/boot/firmware/config.txt", cfg.Boot.ConfigPath)
		assert.Equal(t, "bracketbot", cfg.Robot.Name)
		assert.Equal(t, []string{"i2c", "spi", "dialout", "gpio", "video"}, cfg.Host.Groups)
		assert.Equal(t, "~/.venv", cfg.Python.VenvPath)
		assert.Equal(t, "~/.bashrc", cfg.Python.ProfilePath)
		assert.Equal(t, "wlan0", cfg.Hotspot.Interface)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse([]byte(`
host:
  user: pi
  groups: [i2c]
boot:
  config_path: /boot/config.txt
hotspot:
  interface: wlan1
  ssid: lab-ap
  passphrase: labsecret
`), "bringup.yaml")
		require.NoError(t, err)

		assert.Equal(t, []string{"i2c"}, cfg.Host.Groups)
		assert.Equal(t, "/boot/config.txt", cfg.Boot.ConfigPath)
		assert.Equal(t, "wlan1", cfg.Hotspot.Interface)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := config.Parse([]byte("host: [unclosed"), "bringup.yaml")
		require.Error(t, err)

		var userErr *config.UserError
		require.ErrorAs(t, err, &userErr)
		assert.Equal(t, config.ErrCodeParse, userErr.Code)
		assert.NotEmpty(t, userErr.Suggestion)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantCtx string
	}{
		{
			name:    "missing user",
			yaml:    "apt:\n  packages: [git]\n",
			wantCtx: "host.user",
		},
		{
			name:    "hotspot passphrase too short",
			yaml:    "host:\n  user: pi\nhotspot:\n  ssid: ap\n  passphrase: short\n",
			wantCtx: "hotspot.passphrase",
		},
		{
			name:    "service without exec",
			yaml:    "host:\n  user: pi\nservice:\n  name: bracketbot\n",
			wantCtx: "service.exec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(tt.yaml), "bringup.yaml")
			require.Error(t, err)

			var userErr *config.UserError
			require.ErrorAs(t, err, &userErr)
			assert.Equal(t, config.ErrCodeValidation, userErr.Code)
			assert.Equal(t, tt.wantCtx, userErr.Context)
		})
	}

	t.Run("passphrase ignored without ssid", func(t *testing.T) {
		t.Parallel()

		_, err := config.Parse([]byte("host:\n  user: pi\nhotspot:\n  passphrase: x\n"), "bringup.yaml")
		assert.NoError(t, err)
	})
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bringup.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

		cfg, err := config.NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "bracketbot", cfg.Host.User)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)

		var userErr *config.UserError
		require.ErrorAs(t, err, &userErr)
		assert.Equal(t, config.ErrCodeNotFound, userErr.Code)
	})
}

func TestUserError(t *testing.T) {
	t.Parallel()

	inner := errors.New("yaml: line 3")
	err := config.NewYAMLParseError("bringup.yaml", inner)

	assert.Contains(t, err.Error(), "bringup.yaml")
	assert.ErrorIs(t, err, inner)
}
