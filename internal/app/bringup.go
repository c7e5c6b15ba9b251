// Package app wires the adapters, registry and engine into the bring-up
// application.
package app

import (
	"context"
	"io"

	"github.com/bracketbot/bringup/internal/adapters/command"
	"github.com/bracketbot/bringup/internal/adapters/filesystem"
	"github.com/bracketbot/bringup/internal/domain/config"
	"github.com/bracketbot/bringup/internal/domain/engine"
	"github.com/bracketbot/bringup/internal/domain/gate"
	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
	"github.com/bracketbot/bringup/internal/tui"
)

// Bringup is the application facade behind the CLI.
type Bringup struct {
	out          io.Writer
	log          ports.Logger
	runner       ports.CommandRunner
	fs           ports.FileSystem
	gateOverride engine.ConfirmGate
	rebootPrompt engine.RebootPrompt
}

// New creates a Bringup with the real host adapters.
func New(out io.Writer, log ports.Logger) *Bringup {
	return &Bringup{
		out:          out,
		log:          log,
		runner:       command.NewRealRunner(),
		fs:           filesystem.NewReal(),
		rebootPrompt: tui.NewRebootCountdown(),
	}
}

// WithRunner returns a copy using the given command runner.
func (b *Bringup) WithRunner(runner ports.CommandRunner) *Bringup {
	c := *b
	c.runner = runner
	return &c
}

// WithFileSystem returns a copy using the given filesystem.
func (b *Bringup) WithFileSystem(fs ports.FileSystem) *Bringup {
	c := *b
	c.fs = fs
	return &c
}

// WithGate returns a copy using the given confirmation gate instead of the
// interactive terminal gate.
func (b *Bringup) WithGate(g engine.ConfirmGate) *Bringup {
	c := *b
	c.gateOverride = g
	return &c
}

// WithRebootPrompt returns a copy using the given reboot prompt.
func (b *Bringup) WithRebootPrompt(p engine.RebootPrompt) *Bringup {
	c := *b
	c.rebootPrompt = p
	return &c
}

// RunOptions controls a full bring-up run.
type RunOptions struct {
	ConfigPath string
	// AutoYes skips every confirmation gate, confirming all steps.
	AutoYes bool
	// WindowSeconds overrides the config's confirmation window when > 0.
	WindowSeconds int
}

// Run executes the full registry top to bottom and crosses the reboot
// barrier. The returned RunResult is never nil once the config loaded; the
// error, if any, is the fatal failure that terminated the run.
func (b *Bringup) Run(ctx context.Context, opts RunOptions) (*step.RunResult, error) {
	cfg, err := config.NewLoader().Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	reg := BuildRegistry(cfg, b.runner, b.fs, b.log)

	window := cfg.ConfirmWindowSeconds
	if opts.WindowSeconds > 0 {
		window = opts.WindowSeconds
	}

	g := b.gateOverride
	if g == nil {
		if opts.AutoYes {
			g = gate.NewAuto()
		} else {
			g = tui.NewInteractiveGate(window)
		}
	}

	run, err := engine.New(g, b.log).Run(ctx, reg)
	b.PrintReport(run)
	if err != nil {
		return run, err
	}

	barrier := engine.NewRebootBarrier(b.runner, b.rebootPrompt, b.log, cfg.RebootDelaySeconds)
	rebooted, err := barrier.Cross(ctx)
	if err != nil {
		return run, engine.WrapFatal("reboot", err)
	}
	if rebooted {
		run.MarkRebooted()
	}
	return run, nil
}

// Steps returns the registry's step names and descriptions for the given
// config, without executing anything.
func (b *Bringup) Steps(configPath string) ([]step.Step, error) {
	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return nil, err
	}
	return BuildRegistry(cfg, b.runner, b.fs, b.log).Steps(), nil
}
