package step

import "fmt"

// ActionError is returned by actions whose underlying command exited with a
// nonzero status. The exit code propagates to the process exit status under
// the fail-fast policy.
type ActionError struct {
	Step     string
	ExitCode int
	Detail   string
	Err      error
}

// Error returns the formatted error message.
func (e *ActionError) Error() string {
	msg := fmt.Sprintf("step %q failed", e.Step)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// PreconditionError reports a missing prerequisite (binary, file) detected
// before the dependent action ran. Always fatal.
type PreconditionError struct {
	Step    string
	Missing string
}

// Error returns the formatted error message.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("step %q: required prerequisite %q not found", e.Step, e.Missing)
}
