// Package python provides the uv-managed Python runtime steps: the uv
// installer itself, the project virtualenv, and the shell profile fragment
// wiring both into the operator's login environment.
package python

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/bracketbot/bringup/internal/domain/hostprofile"
	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/provider/commandutil"
	"github.com/bracketbot/bringup/internal/ports"
)

// Step names for the python provider.
const (
	UvStepName      = "uv-installer"
	VenvStepName    = "python-venv"
	ProfileStepName = "shell-profile"
)

// profileFragmentVersion is bumped when the generated profile block changes,
// which makes existing hosts rewrite the block on their next run.
const profileFragmentVersion = 1

// uvInstallScript pipes the official installer; it is itself idempotent and
// only rewrites ~/.local/bin/uv.
const uvInstallScript = "curl -LsSf https://astral.sh/uv/install.sh | sh"

// Options configures the runtime environment steps.
type Options struct {
	MinUvVersion string
	VenvPath     string
	ProfilePath  string
}

// Provider builds the python runtime steps.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewProvider creates a python Provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem) *Provider {
	return &Provider{runner: runner, fs: fs}
}

// UvStep returns the step installing uv. The guard accepts an existing
// install only when it meets the configured version floor.
func (p *Provider) UvStep(opts Options) step.Step {
	s := step.New(UvStepName,
		"Install the uv Python package manager",
		p.installUv)
	return s.WithGuard(func(ctx context.Context) (bool, error) {
		return p.uvRecentEnough(ctx, opts.MinUvVersion)
	})
}

// VenvStep returns the step creating the project virtualenv.
func (p *Provider) VenvStep(opts Options) step.Step {
	s := step.New(VenvStepName,
		"Create the robot virtualenv at "+opts.VenvPath,
		func(ctx context.Context) error {
			return p.createVenv(ctx, opts.VenvPath)
		})
	return s.WithGuard(func(_ context.Context) (bool, error) {
		return p.fs.IsDir(opts.VenvPath), nil
	})
}

// ProfileStep returns the step merging the environment fragment into the
// operator's shell profile.
func (p *Provider) ProfileStep(opts Options) step.Step {
	fragment := profileFragment(opts)

	s := step.New(ProfileStepName,
		"Wire uv and the virtualenv into "+opts.ProfilePath,
		func(_ context.Context) error {
			return p.mergeProfile(opts.ProfilePath, fragment)
		})
	return s.WithGuard(func(_ context.Context) (bool, error) {
		if !p.fs.Exists(opts.ProfilePath) {
			return false, nil
		}
		data, err := p.fs.ReadFile(opts.ProfilePath)
		if err != nil {
			return false, err
		}
		return hostprofile.Present(string(data), fragment), nil
	})
}

// uvRecentEnough checks whether an installed uv satisfies the version floor.
// No floor means any install counts.
func (p *Provider) uvRecentEnough(ctx context.Context, minVersion string) (bool, error) {
	if !commandutil.BinaryExists(ctx, p.runner, "uv") {
		return false, nil
	}
	if minVersion == "" {
		return true, nil
	}

	result, err := p.runner.Run(ctx, "uv", "--version")
	if err != nil || !result.Success() {
		return false, nil
	}

	// Output looks like "uv 0.4.18".
	fields := strings.Fields(result.Stdout)
	if len(fields) < 2 {
		return false, nil
	}
	installed := "v" + strings.TrimPrefix(fields[1], "v")
	floor := "v" + strings.TrimPrefix(minVersion, "v")
	if !semver.IsValid(installed) || !semver.IsValid(floor) {
		return false, nil
	}
	return semver.Compare(installed, floor) >= 0, nil
}

// installUv runs the official installer. curl is a hard prerequisite.
func (p *Provider) installUv(ctx context.Context) error {
	if err := commandutil.RequireBinary(ctx, p.runner, UvStepName, "curl"); err != nil {
		return err
	}

	result, err := p.runner.Run(ctx, "sh", "-c", uvInstallScript)
	if err != nil {
		return err
	}
	if !result.Success() {
		return &step.ActionError{
			Step:     UvStepName,
			ExitCode: result.ExitCode,
			Detail:   "uv installer failed: " + strings.TrimSpace(result.Stderr),
		}
	}
	return nil
}

// createVenv creates the virtualenv with uv.
func (p *Provider) createVenv(ctx context.Context, venvPath string) error {
	result, err := p.runner.Run(ctx, "uv", "venv", ports.ExpandPath(venvPath))
	if err != nil {
		if commandutil.IsCommandNotFound(err) {
			return &step.PreconditionError{Step: VenvStepName, Missing: "uv"}
		}
		return err
	}
	if !result.Success() {
		return &step.ActionError{
			Step:     VenvStepName,
			ExitCode: result.ExitCode,
			Detail:   "uv venv failed: " + strings.TrimSpace(result.Stderr),
		}
	}
	return nil
}

// profileFragment renders the managed profile block.
func profileFragment(opts Options) hostprofile.Fragment {
	activate := fmt.Sprintf("source %s/bin/activate", opts.VenvPath)
	return hostprofile.EnvFragment("shell-profile", profileFragmentVersion,
		map[string]string{"PATH": "$HOME/.local/bin:$PATH"},
		activate,
	)
}

// mergeProfile merges the fragment into the profile file, creating the file
// if the image shipped without one.
func (p *Provider) mergeProfile(profilePath string, fragment hostprofile.Fragment) error {
	var content string
	if p.fs.Exists(profilePath) {
		data, err := p.fs.ReadFile(profilePath)
		if err != nil {
			return err
		}
		content = string(data)
	}

	merged, changed := hostprofile.Merge(content, fragment)
	if !changed {
		return nil
	}
	return p.fs.WriteFile(profilePath, []byte(merged), 0o644)
}
