// Package systemdunit provides the step generating and enabling the robot
// launcher's systemd service.
package systemdunit

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/provider/commandutil"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the launcher service step.
const StepName = "launcher-service"

// Unit describes the service to generate.
type Unit struct {
	Name    string
	ExecCmd string
	WorkDir string
	User    string
}

// Path returns the unit file location.
func (u Unit) Path() string {
	return fmt.Sprintf("/etc/systemd/system/%s.service", u.Name)
}

// Provider builds the launcher service step.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewProvider creates a systemdunit Provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem) *Provider {
	return &Provider{runner: runner, fs: fs}
}

// Step returns the step installing and enabling the unit. The service is
// only enabled, never started: the robot stack needs the post-reboot device
// state, so first start happens on boot after the barrier.
func (p *Provider) Step(unit Unit) step.Step {
	s := step.New(StepName,
		fmt.Sprintf("Install and enable the %s service", unit.Name),
		func(ctx context.Context) error {
			return p.install(ctx, unit)
		})
	return s.WithGuard(func(_ context.Context) (bool, error) {
		return p.fs.Exists(unit.Path()), nil
	})
}

// install writes the unit file, reloads systemd and enables the unit.
func (p *Provider) install(ctx context.Context, unit Unit) error {
	data, err := renderUnit(unit)
	if err != nil {
		return err
	}
	if err := commandutil.WriteSystemFile(ctx, p.runner, p.fs, StepName, unit.Path(), data, "0644"); err != nil {
		return err
	}

	for _, args := range [][]string{
		{"systemctl", "daemon-reload"},
		{"systemctl", "enable", unit.Name + ".service"},
	} {
		result, err := p.runner.Run(ctx, "sudo", args...)
		if err != nil {
			return err
		}
		if !result.Success() {
			return &step.ActionError{
				Step:     StepName,
				ExitCode: result.ExitCode,
				Detail:   strings.Join(args, " ") + " failed: " + strings.TrimSpace(result.Stderr),
			}
		}
	}
	return nil
}

// renderUnit builds the service unit file.
func renderUnit(unit Unit) ([]byte, error) {
	cfg := ini.Empty()

	unitSec, err := cfg.NewSection("Unit")
	if err != nil {
		return nil, err
	}
	unitSec.Key("Description").SetValue("BracketBot launcher")
	unitSec.Key("After").SetValue("network-online.target")

	service, err := cfg.NewSection("Service")
	if err != nil {
		return nil, err
	}
	service.Key("Type").SetValue("simple")
	service.Key("User").SetValue(unit.User)
	if unit.WorkDir != "" {
		service.Key("WorkingDirectory").SetValue(unit.WorkDir)
	}
	service.Key("ExecStart").SetValue(unit.ExecCmd)
	service.Key("Restart").SetValue("on-failure")
	service.Key("RestartSec").SetValue("5")

	installSec, err := cfg.NewSection("Install")
	if err != nil {
		return nil, err
	}
	installSec.Key("WantedBy").SetValue("multi-user.target")

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
