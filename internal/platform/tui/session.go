package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenExplorer
	screenHistory
)

// SessionModel manages the full session flow: menu -> explorer or history -> menu.
// This is the top-level model used for SSH sessions and the local explorer.
type SessionModel struct {
	base     ExplorerConfig
	store    *storage.Store
	username string
	width    int
	height   int
	screen   sessionScreen
	menu     MenuModel
	explorer ExplorerModel
	history  HistoryModel
	err      string
	quitting bool
}

// NewSessionModel creates a new session model. base carries the generator
// and grid settings every preset is applied on top of.
func NewSessionModel(base ExplorerConfig, store *storage.Store, username string, width, height int) SessionModel {
	return SessionModel{
		base:     base,
		store:    store,
		username: username,
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenExplorer:
		return m.updateExplorer(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.history = NewHistoryModel(m.store, m.width, m.height)
		m.screen = screenHistory
		m.menu = NewMenuModel(m.width, m.height)
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		cfg := m.base
		cfg.Preset = selected.ID
		cfg.Params = selected.Apply(m.base.Params)

		explorer, err := NewExplorerModel(cfg, m.store)
		m.menu = NewMenuModel(m.width, m.height)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		explorer.width, explorer.height = m.width, m.height
		explorer.help.Width = m.width
		m.explorer = explorer
		m.screen = screenExplorer
		return m, m.explorer.Init()
	}

	return m, cmd
}

// updateExplorer handles updates when exploring a maze.
func (m SessionModel) updateExplorer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.explorer.Update(msg)
	if explorer, ok := newModel.(ExplorerModel); ok {
		m.explorer = explorer
	}

	if m.explorer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.explorer.BackToMenu() {
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates when showing the run history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if history, ok := newModel.(HistoryModel); ok {
		m.history = history
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenExplorer:
		return m.explorer.View()
	case screenHistory:
		return m.history.View()
	}

	view := m.menu.View()
	if m.err != "" {
		view += "\n" + styleFor(core.ColorEnemy).Render("Error: "+m.err) + "\n"
	}
	return view
}

// Username returns the user the session belongs to.
func (m SessionModel) Username() string {
	return m.username
}

// RunSession runs the menu-driven session as a local program.
func RunSession(base ExplorerConfig, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(base, store, "", width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
