package engine

import (
	"context"
	"fmt"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// DefaultRebootDelaySeconds is the countdown shown before the terminating
// reboot.
const DefaultRebootDelaySeconds = 10

// RebootPrompt shows the pre-reboot countdown and reports whether the
// operator interrupted it.
type RebootPrompt interface {
	Countdown(ctx context.Context, seconds int) (cancelled bool, err error)
}

// RebootBarrier issues the reboot that ends a full run. Steps that mutate
// boot-time configuration (kernel overlays, group membership) are ordered
// before it; anything depending on the new state belongs in a separate
// invocation after the host is back up.
type RebootBarrier struct {
	runner ports.CommandRunner
	prompt RebootPrompt
	log    ports.Logger
	delay  int
}

// NewRebootBarrier creates a RebootBarrier with the given countdown delay in
// seconds. A non-positive delay falls back to DefaultRebootDelaySeconds.
func NewRebootBarrier(runner ports.CommandRunner, prompt RebootPrompt, log ports.Logger, delay int) *RebootBarrier {
	if delay <= 0 {
		delay = DefaultRebootDelaySeconds
	}
	return &RebootBarrier{runner: runner, prompt: prompt, log: log, delay: delay}
}

// Cross shows the countdown and, unless the operator interrupts it, reboots
// the host. Returns true if the reboot command was issued.
func (b *RebootBarrier) Cross(ctx context.Context) (bool, error) {
	cancelled, err := b.prompt.Countdown(ctx, b.delay)
	if err != nil {
		return false, fmt.Errorf("reboot countdown: %w", err)
	}
	if cancelled {
		b.log.Info(ctx, "reboot cancelled by operator; reboot manually to finish bring-up")
		return false, nil
	}

	b.log.Info(ctx, "rebooting host")
	result, err := b.runner.Run(ctx, "sudo", "reboot")
	if err != nil {
		return false, err
	}
	if !result.Success() {
		return false, &step.ActionError{
			Step:     "reboot",
			ExitCode: result.ExitCode,
			Detail:   result.Stderr,
		}
	}
	return true, nil
}
