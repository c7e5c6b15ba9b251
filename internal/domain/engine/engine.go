// Package engine drives the step registry: gate, then guard, then action,
// strictly in registration order, aborting the whole run on the first action
// failure.
package engine

import (
	"context"
	"time"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
)

// ConfirmGate decides whether a step's action runs at all. Exactly one
// decision is produced per step per run.
type ConfirmGate interface {
	Decide(ctx context.Context, s step.Step) (step.Outcome, error)
}

// Engine executes steps sequentially. It performs no retries, no backoff and
// no rollback; recovery from a partial run is re-invocation, relying on each
// step's guard or natural idempotence.
type Engine struct {
	gate ConfirmGate
	log  ports.Logger
}

// New creates an Engine.
func New(gate ConfirmGate, log ports.Logger) *Engine {
	return &Engine{gate: gate, log: log}
}

// Run drives every registered step in order. The returned RunResult always
// contains one entry per step that was reached; on a fatal failure the error
// is a *RunError and no later step is attempted.
func (e *Engine) Run(ctx context.Context, reg *step.Registry) (*step.RunResult, error) {
	run := step.NewRunResult()
	log := e.log.With(ports.F("run_id", run.ID()))
	log.Info(ctx, "starting run", ports.F("steps", reg.Len()))

	for _, s := range reg.Steps() {
		outcome, err := e.gate.Decide(ctx, s)
		if err != nil {
			return run, &RunError{Step: s.Name(), ExitCode: 1, Err: err}
		}

		if !outcome.Proceed() {
			log.Info(ctx, "step declined", ports.F("step", s.Name()))
			run.Add(step.NewResult(s, outcome))
			continue
		}

		res := e.execute(ctx, s, outcome, log)
		run.Add(res)

		if res.Err() != nil {
			log.Error(ctx, "step failed, aborting run",
				ports.F("step", s.Name()), ports.F("error", res.Err()))
			return run, &RunError{
				Step:     s.Name(),
				ExitCode: exitCodeOf(res.Err()),
				Err:      res.Err(),
			}
		}
	}

	return run, nil
}

// execute runs guard then action for a step whose gate decided "run".
func (e *Engine) execute(ctx context.Context, s step.Step, outcome step.Outcome, log ports.Logger) step.Result {
	res := step.NewResult(s, outcome)
	start := time.Now()

	if guard := s.Guard(); guard != nil {
		applied, err := guard(ctx)
		if err != nil {
			return res.WithErr(err).WithDuration(time.Since(start))
		}
		if applied {
			log.Info(ctx, "step already applied", ports.F("step", s.Name()))
			return res.WithAlreadyApplied().WithDuration(time.Since(start))
		}
	}

	log.Info(ctx, "applying step", ports.F("step", s.Name()))
	if err := s.Action()(ctx); err != nil {
		return res.WithErr(err).WithDuration(time.Since(start))
	}

	return res.WithApplied().WithDuration(time.Since(start))
}
