// Package apt provides the system package installation step.
package apt

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the package installation step.
const StepName = "system-packages"

// packageNameRe matches valid Debian package names.
var packageNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9+.-]+$`)

// Provider builds the apt step.
type Provider struct {
	runner ports.CommandRunner
	log    ports.Logger
}

// NewProvider creates an apt Provider.
func NewProvider(runner ports.CommandRunner, log ports.Logger) *Provider {
	return &Provider{runner: runner, log: log}
}

// Step returns the step installing the given packages. The guard reports
// already-applied only when every package is installed; a partial set
// re-runs the whole install, which apt itself treats as a no-op for the
// packages already present.
func (p *Provider) Step(packages []string) step.Step {
	s := step.New(StepName,
		fmt.Sprintf("Install %d system packages via apt", len(packages)),
		func(ctx context.Context) error {
			return p.install(ctx, packages)
		})
	return s.WithGuard(func(ctx context.Context) (bool, error) {
		return p.allInstalled(ctx, packages)
	})
}

// allInstalled checks every package's dpkg status.
func (p *Provider) allInstalled(ctx context.Context, packages []string) (bool, error) {
	for _, pkg := range packages {
		result, err := p.runner.Run(ctx, "dpkg-query", "-W", "-f=${db:Status-Status}", pkg)
		if err != nil {
			return false, err
		}
		if !result.Success() || !strings.Contains(result.Stdout, "installed") {
			return false, nil
		}
	}
	return true, nil
}

// install refreshes the package index and installs everything in one
// apt-get invocation. An index refresh failure is downgraded to a warning:
// installation can still succeed from the cached index, and a stale index is
// not worth aborting the whole bring-up over.
func (p *Provider) install(ctx context.Context, packages []string) error {
	for _, pkg := range packages {
		if !packageNameRe.MatchString(pkg) {
			return fmt.Errorf("invalid package name %q", pkg)
		}
	}

	update, err := p.runner.Run(ctx, "sudo", "apt-get", "update")
	if err != nil {
		return err
	}
	if !update.Success() {
		p.log.Warn(ctx, "apt-get update failed, installing from cached index",
			ports.F("stderr", strings.TrimSpace(update.Stderr)))
	}

	args := append([]string{"apt-get", "install", "-y"}, packages...)
	result, err := p.runner.Run(ctx, "sudo", args...)
	if err != nil {
		return err
	}
	if !result.Success() {
		return &step.ActionError{
			Step:     StepName,
			ExitCode: result.ExitCode,
			Detail:   "apt-get install failed: " + strings.TrimSpace(result.Stderr),
		}
	}
	return nil
}
