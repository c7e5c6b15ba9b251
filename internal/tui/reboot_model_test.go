package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func rebootTickMsgNow() tea.Msg {
	return rebootTickMsg(time.Now())
}

func TestRebootModel_CountdownCompletes(t *testing.T) {
	t.Parallel()

	var m tea.Model = rebootModel{remaining: 2, styles: DefaultStyles()}

	m, _ = m.Update(rebootTickMsgNow())
	assert.False(t, m.(rebootModel).done)

	m, _ = m.Update(rebootTickMsgNow())
	final := m.(rebootModel)
	assert.True(t, final.done)
	assert.False(t, final.cancelled)
}

func TestRebootModel_AnyKeyCancels(t *testing.T) {
	t.Parallel()

	var m tea.Model = rebootModel{remaining: 10, styles: DefaultStyles()}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	final := m.(rebootModel)
	assert.True(t, final.cancelled)
	assert.True(t, final.done)
}

func TestRebootModel_TicksAfterDoneAreIgnored(t *testing.T) {
	t.Parallel()

	var m tea.Model = rebootModel{remaining: 5, styles: DefaultStyles()}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(rebootTickMsgNow())

	final := m.(rebootModel)
	assert.True(t, final.cancelled)
	assert.Equal(t, 5, final.remaining)
}

func TestRebootModel_View(t *testing.T) {
	t.Parallel()

	m := rebootModel{remaining: 7, styles: DefaultStyles()}
	assert.Contains(t, m.View(), "rebooting in 7s")

	cancelled := rebootModel{remaining: 7, cancelled: true, styles: DefaultStyles()}
	assert.Contains(t, cancelled.View(), "reboot cancelled")
}
