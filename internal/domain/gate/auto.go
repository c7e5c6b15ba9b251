package gate

import (
	"context"

	"github.com/bracketbot/bringup/internal/domain/step"
)

// Auto is a confirmation gate that confirms every step without prompting.
// Used when the operator passes --yes.
type Auto struct{}

// NewAuto creates a new Auto gate.
func NewAuto() *Auto {
	return &Auto{}
}

// Decide confirms the step immediately.
func (a *Auto) Decide(_ context.Context, _ step.Step) (step.Outcome, error) {
	return step.OutcomeConfirmed, nil
}
