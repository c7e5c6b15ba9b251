package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bracketbot/bringup/internal/domain/gate"
	"github.com/bracketbot/bringup/internal/domain/step"
)

// gateTickMsg is the one-second countdown tick.
type gateTickMsg time.Time

// gateTick schedules the next countdown tick.
func gateTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return gateTickMsg(t)
	})
}

// gateModel drives one step's confirmation gate machine from terminal
// events: ticks feed the countdown, the first keypress switches to the
// yes/no prompt, and the answer line resolves it.
type gateModel struct {
	machine *gate.Machine
	step    step.Step
	input   textinput.Model
	styles  Styles
}

// newGateModel creates a gate model for the given step.
func newGateModel(m *gate.Machine, s step.Step) gateModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Y"
	ti.CharLimit = 3
	ti.Width = 6

	return gateModel{
		machine: m,
		step:    s,
		input:   ti,
		styles:  DefaultStyles(),
	}
}

// Init starts the countdown.
func (m gateModel) Init() tea.Cmd {
	return gateTick()
}

// Update handles messages.
func (m gateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gateTickMsg:
		m.machine.Tick()
		if m.machine.Done() {
			return m, tea.Quit
		}
		if m.machine.State() == gate.StateWaiting {
			return m, gateTick()
		}
		// A keypress already moved us to the prompt; stop ticking.
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes keypresses by gate state.
func (m gateModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C declines the step rather than tearing down the run; fail-fast
	// is reserved for action failures.
	if msg.Type == tea.KeyCtrlC {
		if m.machine.State() == gate.StateWaiting {
			m.machine.Keypress()
		}
		m.machine.Answer("n")
		return m, tea.Quit
	}

	switch m.machine.State() {
	case gate.StateWaiting:
		// Any key interrupts the countdown; the key itself is discarded.
		m.machine.Keypress()
		m.input.Focus()
		return m, textinput.Blink

	case gate.StateKeyDetected:
		if msg.Type == tea.KeyEnter {
			m.machine.Answer(m.input.Value())
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case gate.StateConfirmed, gate.StateDeclined, gate.StateAutoProceed:
		return m, tea.Quit
	}
	return m, nil
}

// View renders the gate.
func (m gateModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("▸ " + m.step.Name()))
	b.WriteString("\n")
	b.WriteString(m.styles.Desc.Render("  " + m.step.Description()))
	b.WriteString("\n")

	switch m.machine.State() {
	case gate.StateWaiting:
		line := fmt.Sprintf("  continuing in %ds — press any key to review", m.machine.Remaining())
		b.WriteString(m.styles.Countdown.Render(line))
		b.WriteString("\n")

	case gate.StateKeyDetected:
		b.WriteString(m.styles.Prompt.Render("  proceed? [Y/n]: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case gate.StateConfirmed:
		b.WriteString("  confirmed\n")
	case gate.StateDeclined:
		b.WriteString("  skipped\n")
	case gate.StateAutoProceed:
		b.WriteString("  proceeding\n")
	}

	return b.String()
}
