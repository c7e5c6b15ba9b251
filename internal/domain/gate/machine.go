// Package gate implements the timed confirmation protocol that precedes
// every step's action: a bounded countdown polled in one-second ticks, an
// optional yes/no prompt after a keypress, and an automatic proceed when the
// window expires untouched.
package gate

import (
	"strings"

	"github.com/felixgeelhaar/statekit"

	"github.com/bracketbot/bringup/internal/domain/step"
)

// DefaultWindowSeconds is the confirmation window used when none is
// configured.
const DefaultWindowSeconds = 5

// State represents the gate's current state. It aliases statekit's state
// identifier so the constants below feed the machine builder directly.
type State = statekit.StateID

const (
	// StateWaiting is the initial countdown state.
	StateWaiting State = "waiting"
	// StateKeyDetected means a keypress interrupted the countdown and the
	// operator is being prompted to confirm or decline.
	StateKeyDetected State = "key-detected"
	// StateConfirmed is terminal: the operator answered yes (or pressed
	// enter, which defaults to yes).
	StateConfirmed State = "confirmed"
	// StateDeclined is terminal: the operator answered no.
	StateDeclined State = "declined"
	// StateAutoProceed is terminal: the window expired with no keypress.
	StateAutoProceed State = "auto-proceed"
)

// Event types for the gate state machine.
const (
	EventKey     = "KEY"
	EventExpired = "EXPIRED"
	EventYes     = "YES"
	EventNo      = "NO"
)

// Context holds the gate machine's context. The machine itself carries no
// mutable data; the countdown lives on Machine so tests can drive it
// deterministically.
type Context struct{}

// Machine is the per-step confirmation state machine. It never retries and
// never extends the countdown; each step gets a fresh Machine.
type Machine struct {
	interp    *statekit.Interpreter[Context]
	remaining int
}

// NewMachine creates a gate machine with the given window in seconds.
// A non-positive window falls back to DefaultWindowSeconds.
func NewMachine(windowSeconds int) (*Machine, error) {
	if windowSeconds <= 0 {
		windowSeconds = DefaultWindowSeconds
	}

	machine, err := statekit.NewMachine[Context]("confirmation-gate").
		WithInitial(StateWaiting).
		WithContext(Context{}).
		State(StateWaiting).
		On(EventKey).Target(StateKeyDetected).
		On(EventExpired).Target(StateAutoProceed).Done().
		State(StateKeyDetected).
		On(EventYes).Target(StateConfirmed).
		On(EventNo).Target(StateDeclined).Done().
		State(StateConfirmed).Done().
		State(StateDeclined).Done().
		State(StateAutoProceed).Done().
		Build()
	if err != nil {
		return nil, err
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()

	return &Machine{
		interp:    interp,
		remaining: windowSeconds,
	}, nil
}

// Tick consumes one second of the countdown. When the window is exhausted
// with no keypress the machine transitions to AutoProceed. Ticks outside the
// waiting state are ignored.
func (m *Machine) Tick() {
	if m.State() != StateWaiting {
		return
	}
	m.remaining--
	if m.remaining <= 0 {
		m.interp.Send(statekit.Event{Type: EventExpired})
	}
}

// Keypress reports an operator keypress during the countdown. Any input
// buffered during polling is discarded by the caller; the keypress only
// moves the gate to the confirmation prompt.
func (m *Machine) Keypress() {
	if m.State() != StateWaiting {
		return
	}
	m.interp.Send(statekit.Event{Type: EventKey})
}

// Answer resolves the confirmation prompt. An empty answer defaults to yes.
func (m *Machine) Answer(input string) {
	if m.State() != StateKeyDetected {
		return
	}
	if isYes(input) {
		m.interp.Send(statekit.Event{Type: EventYes})
		return
	}
	m.interp.Send(statekit.Event{Type: EventNo})
}

// State returns the machine's current state.
func (m *Machine) State() State {
	return m.interp.State().Value
}

// Remaining returns the seconds left in the countdown window.
func (m *Machine) Remaining() int {
	if m.remaining < 0 {
		return 0
	}
	return m.remaining
}

// Done reports whether the machine reached a terminal state.
func (m *Machine) Done() bool {
	switch m.State() {
	case StateConfirmed, StateDeclined, StateAutoProceed:
		return true
	case StateWaiting, StateKeyDetected:
		return false
	}
	return false
}

// Outcome maps the terminal state to a confirmation outcome. The second
// return value is false while the machine is still running.
func (m *Machine) Outcome() (step.Outcome, bool) {
	switch m.State() {
	case StateConfirmed:
		return step.OutcomeConfirmed, true
	case StateDeclined:
		return step.OutcomeDeclined, true
	case StateAutoProceed:
		return step.OutcomeAutoProceed, true
	case StateWaiting, StateKeyDetected:
		return "", false
	}
	return "", false
}

// Close stops the underlying interpreter.
func (m *Machine) Close() {
	m.interp.Stop()
}

// isYes reports whether the prompt answer counts as a confirmation.
// Empty input defaults to yes.
func isYes(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "y", "yes":
		return true
	}
	return false
}
