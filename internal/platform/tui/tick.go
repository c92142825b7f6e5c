// Package tui provides the Bubble Tea integration for the tank maze engine:
// the lipgloss grid renderer, the interactive explorer, the preset menu, the
// run history and the Wish SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 4 * time.Second

// statusExpiredMsg clears the status line if no newer message replaced it.
type statusExpiredMsg struct {
	seq int
}

// expireStatus returns a command that expires status message seq.
func expireStatus(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
