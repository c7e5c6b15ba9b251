// Package step defines the host configuration step model: named units of
// change paired with an optional idempotency guard and an action.
package step

import "context"

// Guard is a precondition predicate evaluated before an action. It returns
// true when the step's effect is already present on the host, in which case
// the action is skipped and the step is recorded as already applied.
type Guard func(ctx context.Context) (bool, error)

// Action mutates host state. Actions must be safe to re-run after a partial
// failure; steps without a Guard rely on the action's own create-if-missing
// semantics.
type Action func(ctx context.Context) error

// Step is one named unit of host configuration change. Steps are defined at
// registry construction time and immutable thereafter.
type Step struct {
	name        string
	description string
	guard       Guard
	action      Action
}

// New creates a Step with the given name, description and action.
func New(name, description string, action Action) Step {
	return Step{
		name:        name,
		description: description,
		action:      action,
	}
}

// WithGuard returns a copy of the step with the idempotency guard set.
func (s Step) WithGuard(guard Guard) Step {
	s.guard = guard
	return s
}

// Name returns the step name.
func (s Step) Name() string {
	return s.name
}

// Description returns the human-readable step description.
func (s Step) Description() string {
	return s.description
}

// Guard returns the idempotency guard, or nil if the step has none.
func (s Step) Guard() Guard {
	return s.guard
}

// Action returns the step action.
func (s Step) Action() Action {
	return s.action
}
