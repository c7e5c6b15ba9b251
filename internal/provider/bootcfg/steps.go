// Package bootcfg provides the boot configuration step enabling the I2C,
// SPI and UART interfaces on the Pi's firmware config.
package bootcfg

import (
	"context"
	"strings"

	"github.com/bracketbot/bringup/internal/domain/hostprofile"
	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/provider/commandutil"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the boot config step.
const StepName = "boot-interfaces"

// fragmentVersion is bumped whenever the generated block changes shape, so
// hosts configured by an older release get the block rewritten.
const fragmentVersion = 1

// Options selects the interfaces to enable.
type Options struct {
	ConfigPath string
	I2C        bool
	SPI        bool
	UART       bool
}

// Provider builds the boot config step.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewProvider creates a bootcfg Provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem) *Provider {
	return &Provider{runner: runner, fs: fs}
}

// Step returns the step merging the interface overlay block into the boot
// config. The new parameters only take effect after the terminating reboot,
// which is why this step must precede the reboot barrier and nothing in the
// same run may assume the interfaces are live.
func (p *Provider) Step(opts Options) step.Step {
	fragment := buildFragment(opts)

	s := step.New(StepName,
		"Enable I2C/SPI/UART in "+opts.ConfigPath,
		func(ctx context.Context) error {
			return p.merge(ctx, opts.ConfigPath, fragment)
		})
	return s.WithGuard(func(_ context.Context) (bool, error) {
		data, err := p.fs.ReadFile(opts.ConfigPath)
		if err != nil {
			return false, err
		}
		return hostprofile.Present(string(data), fragment), nil
	})
}

// buildFragment renders the dtparam block for the selected interfaces.
func buildFragment(opts Options) hostprofile.Fragment {
	var b strings.Builder
	if opts.I2C {
		b.WriteString("dtparam=i2c_arm=on\n")
	}
	if opts.SPI {
		b.WriteString("dtparam=spi=on\n")
	}
	if opts.UART {
		b.WriteString("enable_uart=1\n")
		b.WriteString("dtoverlay=disable-bt\n")
	}
	return hostprofile.Fragment{
		Section: "boot-interfaces",
		Version: fragmentVersion,
		Content: b.String(),
	}
}

// merge rewrites the boot config with the fragment's block in place. The
// boot config must already exist; a missing file means this is not the
// expected platform.
func (p *Provider) merge(ctx context.Context, path string, fragment hostprofile.Fragment) error {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return &step.PreconditionError{Step: StepName, Missing: path}
	}

	merged, changed := hostprofile.Merge(string(data), fragment)
	if !changed {
		return nil
	}
	return commandutil.WriteSystemFile(ctx, p.runner, p.fs, StepName, path, []byte(merged), "0755")
}
