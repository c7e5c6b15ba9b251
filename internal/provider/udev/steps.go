// Package udev provides the device permission rules step for the motor
// controller's USB interface.
package udev

import (
	"bytes"
	"context"
	"strings"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/provider/commandutil"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the udev rules step.
const StepName = "device-permissions"

// RulesPath is where the generated rules file lives.
const RulesPath = "/etc/udev/rules.d/50-bringup.rules"

// rules grants non-root access to the ODrive motor controller in both its
// normal and DFU modes, matching by USB vendor/product ID.
const rules = `SUBSYSTEM=="usb", ATTR{idVendor}=="1209", ATTR{idProduct}=="0d32", MODE="0666"
SUBSYSTEM=="usb", ATTR{idVendor}=="0483", ATTR{idProduct}=="df11", MODE="0666"
`

// Provider builds the udev rules step.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
	log    ports.Logger
}

// NewProvider creates a udev Provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem, log ports.Logger) *Provider {
	return &Provider{runner: runner, fs: fs, log: log}
}

// Step returns the step writing the rules file. The guard compares content,
// not mere existence, so edited or truncated rules get rewritten.
func (p *Provider) Step() step.Step {
	s := step.New(StepName,
		"Install device permission rules for the motor controller",
		p.write)
	return s.WithGuard(func(_ context.Context) (bool, error) {
		if !p.fs.Exists(RulesPath) {
			return false, nil
		}
		data, err := p.fs.ReadFile(RulesPath)
		if err != nil {
			return false, err
		}
		return bytes.Equal(data, []byte(rules)), nil
	})
}

// write installs the rules file and asks udev to reload. A reload failure
// is only a warning: the terminating reboot picks the rules up regardless.
func (p *Provider) write(ctx context.Context) error {
	if err := commandutil.WriteSystemFile(ctx, p.runner, p.fs, StepName, RulesPath, []byte(rules), "0644"); err != nil {
		return err
	}

	result, err := p.runner.Run(ctx, "sudo", "udevadm", "control", "--reload-rules")
	if err != nil || !result.Success() {
		detail := ""
		if result.Stderr != "" {
			detail = strings.TrimSpace(result.Stderr)
		}
		p.log.Warn(ctx, "udev reload failed, rules apply after reboot", ports.F("stderr", detail))
	}
	return nil
}
