// Package config loads and validates the bring-up configuration file.
package config

import "fmt"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "bringup.yaml"

// Config describes one host bring-up: the operator account, the system
// packages, the hotspot credentials and the runtime environment. It is
// declarative input; the step registry derives the actual actions from it.
type Config struct {
	Host    Host    `yaml:"host"`
	Robot   Robot   `yaml:"robot"`
	Apt     Apt     `yaml:"apt"`
	Boot    Boot    `yaml:"boot"`
	Hotspot Hotspot `yaml:"hotspot"`
	Python  Python  `yaml:"python"`
	Service Service `yaml:"service"`

	// ConfirmWindowSeconds bounds each step's confirmation gate.
	// Zero means the default window.
	ConfirmWindowSeconds int `yaml:"confirm_window_seconds"`
	// RebootDelaySeconds is the countdown before the terminating reboot.
	RebootDelaySeconds int `yaml:"reboot_delay_seconds"`
}

// Host identifies the operator account the bring-up configures.
type Host struct {
	User string `yaml:"user"`
	// Groups the user must belong to for device access.
	Groups []string `yaml:"groups"`
}

// Robot names the robot and locates its runtime configuration.
type Robot struct {
	Name       string `yaml:"name"`
	ConfigPath string `yaml:"config_path"`
}

// Apt lists the system packages the robot stack needs.
type Apt struct {
	Packages []string `yaml:"packages"`
}

// Boot selects the boot-time interfaces to enable. All of these only take
// effect after the terminating reboot.
type Boot struct {
	ConfigPath string `yaml:"config_path"`
	I2C        bool   `yaml:"i2c"`
	SPI        bool   `yaml:"spi"`
	UART       bool   `yaml:"uart"`
}

// Hotspot configures the robot's Wi-Fi access point.
type Hotspot struct {
	SSID       string `yaml:"ssid"`
	Passphrase string `yaml:"passphrase"`
	Interface  string `yaml:"interface"`
}

// Python configures the uv-managed runtime environment.
type Python struct {
	// MinUvVersion is the semver floor for an existing uv install.
	MinUvVersion string `yaml:"min_uv_version"`
	VenvPath     string `yaml:"venv_path"`
	ProfilePath  string `yaml:"profile_path"`
}

// Service configures the robot launcher systemd unit.
type Service struct {
	Name    string `yaml:"name"`
	ExecCmd string `yaml:"exec"`
	WorkDir string `yaml:"workdir"`
}

// Validate checks the configuration for the errors a run would otherwise
// trip over halfway through.
func (c *Config) Validate() error {
	if c.Host.User == "" {
		return NewValidationError("host.user", "operator user is required",
			"Set host.user to the account the robot stack runs as.")
	}
	if c.Hotspot.SSID != "" {
		if len(c.Hotspot.Passphrase) < 8 || len(c.Hotspot.Passphrase) > 63 {
			return NewValidationError("hotspot.passphrase",
				"WPA passphrase must be 8-63 characters",
				"Pick a passphrase between 8 and 63 characters.")
		}
	}
	if c.Service.Name != "" && c.Service.ExecCmd == "" {
		return NewValidationError("service.exec",
			fmt.Sprintf("service %q has no exec command", c.Service.Name),
			"Set service.exec to the command the launcher unit should run.")
	}
	return nil
}

// applyDefaults fills in the conventional Raspberry Pi paths and values.
func (c *Config) applyDefaults() {
	if c.Boot.ConfigPath == "" {
		c.Boot.ConfigPath = "/boot/firmware/config.txt"
	}
	if c.Robot.Name == "" {
		c.Robot.Name = "bracketbot"
	}
	if len(c.Host.Groups) == 0 {
		c.Host.Groups = []string{"i2c", "spi", "dialout", "gpio", "video"}
	}
	if c.Python.VenvPath == "" {
		c.Python.VenvPath = "~/.venv"
	}
	if c.Python.ProfilePath == "" {
		c.Python.ProfilePath = "~/.bashrc"
	}
	if c.Hotspot.Interface == "" {
		c.Hotspot.Interface = "wlan0"
	}
}
