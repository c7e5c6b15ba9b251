// Package commandutil provides helpers shared by the provider steps.
package commandutil

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// IsCommandNotFound reports whether an error indicates a missing executable.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return false
}

// RequireBinary checks that a prerequisite binary is on PATH before an
// action that depends on it runs. A missing binary is a fatal precondition
// error.
func RequireBinary(ctx context.Context, runner ports.CommandRunner, stepName, binary string) error {
	result, err := runner.Run(ctx, "which", binary)
	if err != nil || !result.Success() {
		return &step.PreconditionError{Step: stepName, Missing: binary}
	}
	return nil
}

// BinaryExists reports whether a binary is on PATH. Used by guards, where a
// missing binary means "not yet applied" rather than an error.
func BinaryExists(ctx context.Context, runner ports.CommandRunner, binary string) bool {
	result, err := runner.Run(ctx, "which", binary)
	return err == nil && result.Success()
}
