// Package filesystem provides the OS-backed filesystem adapter.
package filesystem

import (
	"os"

	"github.com/bracketbot/bringup/internal/ports"
)

// Real is the filesystem adapter backed by the operating system.
type Real struct{}

// NewReal creates a new Real filesystem adapter.
func NewReal() *Real {
	return &Real{}
}

// ReadFile reads the named file.
func (f *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(ports.ExpandPath(path))
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *Real) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(ports.ExpandPath(path), data, perm)
}

// Exists reports whether the path exists.
func (f *Real) Exists(path string) bool {
	_, err := os.Stat(ports.ExpandPath(path))
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func (f *Real) IsDir(path string) bool {
	info, err := os.Stat(ports.ExpandPath(path))
	return err == nil && info.IsDir()
}

// MkdirAll creates the directory and any missing parents.
func (f *Real) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(ports.ExpandPath(path), perm)
}

// Remove removes the named file or empty directory.
func (f *Real) Remove(path string) error {
	return os.Remove(ports.ExpandPath(path))
}

// Ensure Real implements ports.FileSystem.
var _ ports.FileSystem = (*Real)(nil)
