package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bracketbot/bringup/internal/domain/step"
)

var (
	appliedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	declinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)

	titleCaser = cases.Title(language.English)
)

// timeUnit is the rounding granularity for reported step durations.
const timeUnit = 10 * time.Millisecond

// PrintReport writes the per-step outcome report for a run.
func (b *Bringup) PrintReport(run *step.RunResult) {
	if run == nil || run.Len() == 0 {
		return
	}

	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, headingStyle.Render(titleCaser.String("run summary")))

	applied, already, declined, failed := 0, 0, 0, 0
	for _, res := range run.Results() {
		var line string
		switch {
		case res.Err() != nil:
			line = failedStyle.Render(fmt.Sprintf("  ✗ %s — %v", res.Step().Name(), res.Err()))
			failed++
		case res.Outcome() == step.OutcomeDeclined:
			line = declinedStyle.Render(fmt.Sprintf("  ○ %s — declined", res.Step().Name()))
			declined++
		case res.AlreadyApplied():
			line = skippedStyle.Render(fmt.Sprintf("  ● %s — already applied", res.Step().Name()))
			already++
		default:
			line = appliedStyle.Render(fmt.Sprintf("  ✓ %s (%s)", res.Step().Name(), res.Duration().Round(timeUnit)))
			applied++
		}
		fmt.Fprintln(b.out, line)
	}

	fmt.Fprintf(b.out, "\n%d applied, %d already applied, %d declined, %d failed (run %s)\n",
		applied, already, declined, failed, run.ID())
}
