package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RebootCountdown is the terminal prompt shown before the terminating
// reboot. Any keypress cancels the reboot.
type RebootCountdown struct{}

// NewRebootCountdown creates a RebootCountdown.
func NewRebootCountdown() *RebootCountdown {
	return &RebootCountdown{}
}

// Countdown runs the visible countdown and reports whether the operator
// interrupted it.
func (r *RebootCountdown) Countdown(ctx context.Context, seconds int) (bool, error) {
	model := rebootModel{
		remaining: seconds,
		styles:    DefaultStyles(),
	}

	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(rebootModel)
	if !ok {
		return false, fmt.Errorf("unexpected reboot model type %T", final)
	}
	return m.cancelled, nil
}

// rebootTickMsg is the one-second reboot countdown tick.
type rebootTickMsg time.Time

func rebootTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return rebootTickMsg(t)
	})
}

// rebootModel counts down to the reboot; any key cancels.
type rebootModel struct {
	remaining int
	cancelled bool
	done      bool
	styles    Styles
}

// Init starts the countdown.
func (m rebootModel) Init() tea.Cmd {
	return rebootTick()
}

// Update handles messages.
func (m rebootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case rebootTickMsg:
		if m.done {
			return m, nil
		}
		m.remaining--
		if m.remaining <= 0 {
			m.done = true
			return m, tea.Quit
		}
		return m, rebootTick()

	case tea.KeyMsg:
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the countdown.
func (m rebootModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Warn.Render("Bring-up complete — rebooting to activate boot-time changes."))
	b.WriteString("\n")
	if m.cancelled {
		b.WriteString("  reboot cancelled\n")
		return b.String()
	}
	line := fmt.Sprintf("  rebooting in %ds — press any key to cancel", m.remaining)
	b.WriteString(m.styles.Countdown.Render(line))
	b.WriteString("\n")
	return b.String()
}
