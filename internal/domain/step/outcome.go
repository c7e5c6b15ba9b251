package step

// Outcome is the confirmation gate's decision for a step. Exactly one
// outcome is produced per step per run.
type Outcome string

const (
	// OutcomeAutoProceed means the confirmation window elapsed with no
	// keypress; equivalent in effect to OutcomeConfirmed.
	OutcomeAutoProceed Outcome = "auto-proceed"
	// OutcomeConfirmed means the operator explicitly confirmed the step.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeDeclined means the operator declined the step; its action is
	// skipped and the run continues with the next step.
	OutcomeDeclined Outcome = "declined"
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// Proceed reports whether the step's action should run.
func (o Outcome) Proceed() bool {
	return o == OutcomeAutoProceed || o == OutcomeConfirmed
}
