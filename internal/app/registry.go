package app

import (
	"github.com/bracketbot/bringup/internal/domain/config"
	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/provider/apt"
	"github.com/bracketbot/bringup/internal/provider/bootcfg"
	"github.com/bracketbot/bringup/internal/provider/groups"
	"github.com/bracketbot/bringup/internal/provider/hotspot"
	"github.com/bracketbot/bringup/internal/provider/python"
	"github.com/bracketbot/bringup/internal/provider/robotcfg"
	"github.com/bracketbot/bringup/internal/provider/systemdunit"
	"github.com/bracketbot/bringup/internal/provider/udev"
	"github.com/bracketbot/bringup/internal/ports"
)

// BuildRegistry assembles the full bring-up sequence from the config.
//
// Ordering matters: boot config, group membership and udev rules only take
// effect after the terminating reboot, so they come first and nothing later
// in the same run may assume their effect. The launcher service is enabled
// last so its first start, on boot, sees the finished environment.
func BuildRegistry(cfg *config.Config, runner ports.CommandRunner, fs ports.FileSystem, log ports.Logger) *step.Registry {
	reg := step.NewRegistry()

	if len(cfg.Apt.Packages) > 0 {
		reg.Register(apt.NewProvider(runner, log).Step(cfg.Apt.Packages))
	}

	if cfg.Boot.I2C || cfg.Boot.SPI || cfg.Boot.UART {
		reg.Register(bootcfg.NewProvider(runner, fs).Step(bootcfg.Options{
			ConfigPath: cfg.Boot.ConfigPath,
			I2C:        cfg.Boot.I2C,
			SPI:        cfg.Boot.SPI,
			UART:       cfg.Boot.UART,
		}))
	}

	reg.Register(groups.NewProvider(runner).Step(cfg.Host.User, cfg.Host.Groups))
	reg.Register(udev.NewProvider(runner, fs, log).Step())

	if cfg.Hotspot.SSID != "" {
		reg.Register(hotspot.NewProvider(runner, fs, log).Step(hotspot.Options{
			SSID:       cfg.Hotspot.SSID,
			Passphrase: cfg.Hotspot.Passphrase,
			Interface:  cfg.Hotspot.Interface,
		}))
	}

	py := python.NewProvider(runner, fs)
	pyOpts := python.Options{
		MinUvVersion: cfg.Python.MinUvVersion,
		VenvPath:     cfg.Python.VenvPath,
		ProfilePath:  cfg.Python.ProfilePath,
	}
	reg.Register(py.UvStep(pyOpts))
	reg.Register(py.VenvStep(pyOpts))
	reg.Register(py.ProfileStep(pyOpts))

	reg.Register(robotcfg.NewProvider(fs).Step(cfg.Robot.ConfigPath, cfg.Robot.Name))

	if cfg.Service.Name != "" {
		reg.Register(systemdunit.NewProvider(runner, fs).Step(systemdunit.Unit{
			Name:    cfg.Service.Name,
			ExecCmd: cfg.Service.ExecCmd,
			WorkDir: cfg.Service.WorkDir,
			User:    cfg.Host.User,
		}))
	}

	return reg
}
