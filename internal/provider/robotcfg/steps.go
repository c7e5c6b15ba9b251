// Package robotcfg provides the step seeding the robot's runtime
// configuration file. The control stack reads this TOML at startup; the
// orchestrator only guarantees a sane default exists.
package robotcfg

import (
	"context"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the robot config step.
const StepName = "robot-config"

// DefaultPath is where the control stack looks for its configuration.
const DefaultPath = "~/bracketbot/config.toml"

// defaults is the factory configuration for a stock robot. Operators tune
// it after bring-up; the guard never overwrites an existing file.
type defaults struct {
	Robot robotSection `toml:"robot"`
	Drive driveSection `toml:"drive"`
	IMU   imuSection   `toml:"imu"`
	MQTT  mqttSection  `toml:"mqtt"`
}

type robotSection struct {
	Name string `toml:"name"`
}

type driveSection struct {
	WheelDiameterM float64 `toml:"wheel_diameter_m"`
	TrackWidthM    float64 `toml:"track_width_m"`
	MaxSpeedMps    float64 `toml:"max_speed_mps"`
}

type imuSection struct {
	I2CBus  int `toml:"i2c_bus"`
	Address int `toml:"address"`
}

type mqttSection struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Provider builds the robot config step.
type Provider struct {
	fs ports.FileSystem
}

// NewProvider creates a robotcfg Provider.
func NewProvider(fs ports.FileSystem) *Provider {
	return &Provider{fs: fs}
}

// Step returns the step writing the default config if none exists.
func (p *Provider) Step(path, robotName string) step.Step {
	if path == "" {
		path = DefaultPath
	}

	s := step.New(StepName,
		"Seed the default robot configuration at "+path,
		func(_ context.Context) error {
			return p.seed(path, robotName)
		})
	return s.WithGuard(func(_ context.Context) (bool, error) {
		return p.fs.Exists(path), nil
	})
}

// seed writes the factory defaults.
func (p *Provider) seed(path, robotName string) error {
	cfg := defaults{
		Robot: robotSection{Name: robotName},
		Drive: driveSection{
			WheelDiameterM: 0.165,
			TrackWidthM:    0.335,
			MaxSpeedMps:    1.2,
		},
		IMU:  imuSection{I2CBus: 1, Address: 0x68},
		MQTT: mqttSection{Host: "localhost", Port: 1883},
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(ports.ExpandPath(path))
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return p.fs.WriteFile(path, data, 0o644)
}
