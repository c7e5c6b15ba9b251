package logging

import (
	"context"

	"github.com/bracketbot/bringup/internal/ports"
)

// NopLogger discards all log messages. Useful in tests.
type NopLogger struct{}

// NewNopLogger creates a new NopLogger.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (l *NopLogger) Debug(context.Context, string, ...ports.Field) {}

// Info discards the message.
func (l *NopLogger) Info(context.Context, string, ...ports.Field) {}

// Warn discards the message.
func (l *NopLogger) Warn(context.Context, string, ...ports.Field) {}

// Error discards the message.
func (l *NopLogger) Error(context.Context, string, ...ports.Field) {}

// With returns the same NopLogger.
func (l *NopLogger) With(...ports.Field) ports.Logger { return l }

// Level returns LevelError so callers can skip building expensive fields.
func (l *NopLogger) Level() ports.Level { return ports.LevelError }

// Ensure NopLogger implements Logger.
var _ ports.Logger = (*NopLogger)(nil)
