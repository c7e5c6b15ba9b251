package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/adapters/logging"
	"github.com/bracketbot/bringup/internal/ports"
)

func TestConsoleLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewConsoleLogger(logging.WithOutput(&buf))

	log.Info(context.Background(), "applying step", ports.F("step", "system-packages"))

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "applying step")
	assert.Contains(t, out, "step=system-packages")
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewConsoleLogger(logging.WithOutput(&buf), logging.WithLevel(ports.LevelWarn))

	ctx := context.Background()
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Equal(t, ports.LevelWarn, log.Level())
}

func TestConsoleLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewConsoleLogger(logging.WithOutput(&buf), logging.WithJSONFormat(true))

	log.Info(context.Background(), "step failed", ports.F("exit_code", 100))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "step failed", entry["msg"])
	assert.EqualValues(t, 100, entry["exit_code"])
	assert.NotEmpty(t, entry["time"])
}

func TestConsoleLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewConsoleLogger(logging.WithOutput(&buf))

	scoped := log.With(ports.F("run_id", "abc123"))
	scoped.Info(context.Background(), "starting run")

	assert.Contains(t, buf.String(), "run_id=abc123")

	// The parent logger is unaffected.
	buf.Reset()
	log.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "run_id")
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	log := logging.NewNopLogger()
	ctx := context.Background()

	// Must not panic and With must chain.
	log.Debug(ctx, "a")
	log.With(ports.F("k", "v")).Error(ctx, "b")
}
