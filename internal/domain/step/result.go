package step

import (
	"time"

	"github.com/google/uuid"
)

// Result captures the outcome of driving a single step through the gate,
// guard and action.
type Result struct {
	step           Step
	outcome        Outcome
	applied        bool
	alreadyApplied bool
	err            error
	duration       time.Duration
}

// NewResult creates a Result for the given step and gate outcome.
func NewResult(s Step, outcome Outcome) Result {
	return Result{step: s, outcome: outcome}
}

// Step returns the step this result belongs to.
func (r Result) Step() Step {
	return r.step
}

// Outcome returns the gate outcome.
func (r Result) Outcome() Outcome {
	return r.outcome
}

// Applied reports whether the action ran and succeeded.
func (r Result) Applied() bool {
	return r.applied
}

// AlreadyApplied reports whether the guard short-circuited the action.
func (r Result) AlreadyApplied() bool {
	return r.alreadyApplied
}

// Err returns the action or guard error, if any.
func (r Result) Err() error {
	return r.err
}

// Duration returns how long the guard and action took.
func (r Result) Duration() time.Duration {
	return r.duration
}

// Success reports whether the step finished without error. Declined and
// already-applied steps count as successful.
func (r Result) Success() bool {
	return r.err == nil
}

// WithApplied returns a copy with applied set.
func (r Result) WithApplied() Result {
	r.applied = true
	return r
}

// WithAlreadyApplied returns a copy with alreadyApplied set.
func (r Result) WithAlreadyApplied() Result {
	r.alreadyApplied = true
	return r
}

// WithErr returns a copy with the error set.
func (r Result) WithErr(err error) Result {
	r.err = err
	return r
}

// WithDuration returns a copy with the duration set.
func (r Result) WithDuration(d time.Duration) Result {
	r.duration = d
	return r
}

// RunResult is the ordered sequence of step results for one run. It lives
// only in process memory; re-running the orchestrator re-derives idempotency
// from host artifacts, never from prior run records.
type RunResult struct {
	id       string
	results  []Result
	rebooted bool
}

// NewRunResult creates an empty RunResult with a fresh run ID.
func NewRunResult() *RunResult {
	return &RunResult{
		id:      uuid.NewString(),
		results: make([]Result, 0),
	}
}

// ID returns the run's unique identifier.
func (r *RunResult) ID() string {
	return r.id
}

// Add appends a step result.
func (r *RunResult) Add(res Result) {
	r.results = append(r.results, res)
}

// Results returns the step results in execution order.
func (r *RunResult) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Len returns the number of recorded results.
func (r *RunResult) Len() int {
	return len(r.results)
}

// MarkRebooted records that the run crossed the reboot barrier.
func (r *RunResult) MarkRebooted() {
	r.rebooted = true
}

// Rebooted reports whether the terminating reboot was issued.
func (r *RunResult) Rebooted() bool {
	return r.rebooted
}

// Failed returns the first failed result, if any.
func (r *RunResult) Failed() (Result, bool) {
	for _, res := range r.results {
		if res.Err() != nil {
			return res, true
		}
	}
	return Result{}, false
}
