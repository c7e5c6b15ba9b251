package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bracketbot/bringup/internal/domain/gate"
	"github.com/bracketbot/bringup/internal/domain/step"
)

// InteractiveGate is the terminal-backed confirmation gate. Each Decide
// call runs a fresh gate machine and bubbletea program; the countdown never
// carries over between steps.
type InteractiveGate struct {
	windowSeconds int
}

// NewInteractiveGate creates an InteractiveGate with the given confirmation
// window in seconds.
func NewInteractiveGate(windowSeconds int) *InteractiveGate {
	return &InteractiveGate{windowSeconds: windowSeconds}
}

// Decide shows the countdown for the step and returns the operator's
// decision.
func (g *InteractiveGate) Decide(ctx context.Context, s step.Step) (step.Outcome, error) {
	machine, err := gate.NewMachine(g.windowSeconds)
	if err != nil {
		return "", err
	}
	defer machine.Close()

	program := tea.NewProgram(newGateModel(machine, s), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return "", fmt.Errorf("confirmation gate: %w", err)
	}

	outcome, done := machine.Outcome()
	if !done {
		// The program exited mid-countdown (context cancelled).
		return step.OutcomeDeclined, ctx.Err()
	}
	return outcome, nil
}
