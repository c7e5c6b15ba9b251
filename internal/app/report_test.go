package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bracketbot/bringup/internal/adapters/logging"
	"github.com/bracketbot/bringup/internal/app"
	"github.com/bracketbot/bringup/internal/domain/step"
)

func TestPrintReport(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	run := step.NewRunResult()
	run.Add(step.NewResult(step.New("system-packages", "", noop), step.OutcomeAutoProceed).
		WithApplied().WithDuration(120 * time.Millisecond))
	run.Add(step.NewResult(step.New("device-groups", "", noop), step.OutcomeConfirmed).
		WithAlreadyApplied())
	run.Add(step.NewResult(step.New("wifi-hotspot", "", noop), step.OutcomeDeclined))
	run.Add(step.NewResult(step.New("uv-installer", "", noop), step.OutcomeAutoProceed).
		WithErr(errors.New("installer unreachable")))

	var out bytes.Buffer
	app.New(&out, logging.NewNopLogger()).PrintReport(run)

	report := out.String()
	assert.Contains(t, report, "Run Summary")
	assert.Contains(t, report, "✓ system-packages (120ms)")
	assert.Contains(t, report, "● device-groups — already applied")
	assert.Contains(t, report, "○ wifi-hotspot — declined")
	assert.Contains(t, report, "✗ uv-installer")
	assert.Contains(t, report, "1 applied, 1 already applied, 1 declined, 1 failed")
	assert.Contains(t, report, run.ID())
}

func TestPrintReport_EmptyRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app.New(&out, logging.NewNopLogger()).PrintReport(step.NewRunResult())
	assert.Empty(t, out.String())
}
