// Package tui contains the terminal models for the confirmation gate and
// the pre-reboot countdown.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by the models.
type Styles struct {
	Title     lipgloss.Style
	Desc      lipgloss.Style
	Prompt    lipgloss.Style
	Countdown lipgloss.Style
	Warn      lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Desc:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Prompt:    lipgloss.NewStyle().Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Warn:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
