package commandutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// WriteSystemFile writes data to a root-owned path. The content is staged in
// /tmp under the invoking user and moved into place with sudo install, which
// sets the mode atomically.
func WriteSystemFile(ctx context.Context, runner ports.CommandRunner, fs ports.FileSystem, stepName, path string, data []byte, mode string) error {
	staging := filepath.Join("/tmp", "bringup-"+filepath.Base(path))
	if err := fs.WriteFile(staging, data, 0o600); err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	defer func() { _ = fs.Remove(staging) }()

	result, err := runner.Run(ctx, "sudo", "install", "-m", mode, staging, path)
	if err != nil {
		return err
	}
	if !result.Success() {
		return &step.ActionError{
			Step:     stepName,
			ExitCode: result.ExitCode,
			Detail:   fmt.Sprintf("install %s failed: %s", path, strings.TrimSpace(result.Stderr)),
		}
	}
	return nil
}
