// Package groups provides the device-access group membership step.
package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the group membership step.
const StepName = "device-groups"

// Provider builds the group membership step.
type Provider struct {
	runner ports.CommandRunner
}

// NewProvider creates a groups Provider.
func NewProvider(runner ports.CommandRunner) *Provider {
	return &Provider{runner: runner}
}

// Step returns the step adding user to the given groups. Membership only
// takes effect at next login, so this step sits before the reboot barrier.
func (p *Provider) Step(user string, groups []string) step.Step {
	s := step.New(StepName,
		fmt.Sprintf("Add %s to groups: %s", user, strings.Join(groups, ", ")),
		func(ctx context.Context) error {
			return p.addToGroups(ctx, user, groups)
		})
	return s.WithGuard(func(ctx context.Context) (bool, error) {
		return p.isMemberOfAll(ctx, user, groups)
	})
}

// isMemberOfAll checks the user's current group list.
func (p *Provider) isMemberOfAll(ctx context.Context, user string, groups []string) (bool, error) {
	result, err := p.runner.Run(ctx, "id", "-nG", user)
	if err != nil {
		return false, err
	}
	if !result.Success() {
		return false, fmt.Errorf("id -nG %s: %s", user, strings.TrimSpace(result.Stderr))
	}

	current := make(map[string]bool)
	for _, g := range strings.Fields(result.Stdout) {
		current[g] = true
	}
	for _, g := range groups {
		if !current[g] {
			return false, nil
		}
	}
	return true, nil
}

// addToGroups appends the user to every group in one usermod call. Groups
// the user already belongs to are unaffected.
func (p *Provider) addToGroups(ctx context.Context, user string, groups []string) error {
	result, err := p.runner.Run(ctx, "sudo", "usermod", "-aG", strings.Join(groups, ","), user)
	if err != nil {
		return err
	}
	if !result.Success() {
		return &step.ActionError{
			Step:     StepName,
			ExitCode: result.ExitCode,
			Detail:   "usermod failed: " + strings.TrimSpace(result.Stderr),
		}
	}
	return nil
}
