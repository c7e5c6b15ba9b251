package robotcfg_test

import (
	"context"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/provider/robotcfg"
	"github.com/bracketbot/bringup/internal/testutil/mocks"
)

func TestStep_Guard(t *testing.T) {
	t.Parallel()

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()

		s := robotcfg.NewProvider(mocks.NewFileSystem()).Step("/home/pi/bracketbot/config.toml", "bracketbot")
		applied, err := s.Guard()(context.Background())
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("existing config is never overwritten", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddFile("/home/pi/bracketbot/config.toml", []byte("[robot]\nname = \"tuned\"\n"))

		s := robotcfg.NewProvider(fs).Step("/home/pi/bracketbot/config.toml", "bracketbot")
		applied, err := s.Guard()(context.Background())
		require.NoError(t, err)
		assert.True(t, applied)
	})
}

func TestStep_Action(t *testing.T) {
	t.Parallel()

	t.Run("seeds factory defaults", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		path := "/home/pi/bracketbot/config.toml"

		s := robotcfg.NewProvider(fs).Step(path, "delivery-bot-7")
		require.NoError(t, s.Action()(context.Background()))

		assert.True(t, fs.IsDir("/home/pi/bracketbot"))

		data, err := fs.ReadFile(path)
		require.NoError(t, err)

		var cfg struct {
			Robot struct {
				Name string `toml:"name"`
			} `toml:"robot"`
			Drive struct {
				WheelDiameterM float64 `toml:"wheel_diameter_m"`
				TrackWidthM    float64 `toml:"track_width_m"`
				MaxSpeedMps    float64 `toml:"max_speed_mps"`
			} `toml:"drive"`
			IMU struct {
				I2CBus  int `toml:"i2c_bus"`
				Address int `toml:"address"`
			} `toml:"imu"`
			MQTT struct {
				Host string `toml:"host"`
				Port int    `toml:"port"`
			} `toml:"mqtt"`
		}
		require.NoError(t, toml.Unmarshal(data, &cfg))

		assert.Equal(t, "delivery-bot-7", cfg.Robot.Name)
		assert.InDelta(t, 0.165, cfg.Drive.WheelDiameterM, 1e-9)
		assert.InDelta(t, 0.335, cfg.Drive.TrackWidthM, 1e-9)
		assert.InDelta(t, 1.2, cfg.Drive.MaxSpeedMps, 1e-9)
		assert.Equal(t, 1, cfg.IMU.I2CBus)
		assert.Equal(t, 0x68, cfg.IMU.Address)
		assert.Equal(t, "localhost", cfg.MQTT.Host)
		assert.Equal(t, 1883, cfg.MQTT.Port)
	})

	t.Run("empty path falls back to the default", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		s := robotcfg.NewProvider(fs).Step("", "bracketbot")

		assert.Contains(t, s.Description(), robotcfg.DefaultPath)
	})
}
