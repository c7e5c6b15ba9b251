package engine

import (
	"errors"
	"fmt"

	"github.com/bracketbot/bringup/internal/domain/step"
)

// RunError is the fatal error terminating a run. Its exit code becomes the
// process exit status.
type RunError struct {
	Step     string
	ExitCode int
	Err      error
}

// Error returns the formatted error message.
func (e *RunError) Error() string {
	return fmt.Sprintf("run aborted at step %q: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the process exit status for an error returned by Run.
// A nil error maps to 0; errors without an embedded code map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var runErr *RunError
	if errors.As(err, &runErr) && runErr.ExitCode != 0 {
		return runErr.ExitCode
	}
	return 1
}

// WrapFatal wraps an error from outside the step loop (the reboot barrier)
// into the RunError shape the CLI maps to an exit status.
func WrapFatal(stepName string, err error) *RunError {
	return &RunError{Step: stepName, ExitCode: exitCodeOf(err), Err: err}
}

// exitCodeOf digs the failing command's exit code out of an action error.
func exitCodeOf(err error) int {
	var actionErr *step.ActionError
	if errors.As(err, &actionErr) && actionErr.ExitCode != 0 {
		return actionErr.ExitCode
	}
	return 1
}
