package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-maze/internal/mazegen"
	"github.com/vovakirdan/tank-maze/internal/registry"
	"github.com/vovakirdan/tank-maze/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sessionPress(t *testing.T, m SessionModel, keys ...string) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m, cmd
}

func TestMenuListsPresets(t *testing.T) {
	m := NewMenuModel(80, 24)
	if len(m.presets) != len(registry.List()) {
		t.Fatalf("menu has %d presets, registry has %d", len(m.presets), len(registry.List()))
	}

	view := m.View()
	for _, p := range m.presets {
		if !strings.Contains(view, p.Title) {
			t.Errorf("menu view missing %q", p.Title)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(80, 24)

	next, _ := m.Update(keyMsg("up"))
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", m.cursor)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().ID != m.presets[1].ID {
		t.Errorf("Selected() = %v, expected %q", m.Selected(), m.presets[1].ID)
	}
}

func TestSessionMenuToExplorerAndBack(t *testing.T) {
	store := openStore(t)
	base := ExplorerConfig{Params: mazegen.DefaultParams()}
	base.Params.Seed = 5

	m := NewSessionModel(base, store, "tester", 100, 40)
	first := m.menu.presets[0]

	m, _ = sessionPress(t, m, "enter")
	if m.screen != screenExplorer {
		t.Fatalf("screen = %v, expected explorer", m.screen)
	}
	if m.explorer.cfg.Preset != first.ID {
		t.Errorf("explorer preset = %q, expected %q", m.explorer.cfg.Preset, first.ID)
	}
	want := first.Apply(base.Params)
	if m.explorer.cfg.Params != want {
		t.Errorf("explorer params = %+v, expected %+v", m.explorer.cfg.Params, want)
	}

	m, _ = sessionPress(t, m, "esc")
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}
	if m.menu.Selected() != nil {
		t.Error("menu selection should be reset")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Preset != first.ID {
		t.Errorf("history = %+v, expected one %q run", runs, first.ID)
	}
}

func TestSessionHistory(t *testing.T) {
	store := openStore(t)
	for _, dual := range []bool{false, true, true} {
		p := mazegen.DefaultParams()
		p.DualSpawn = dual
		rows, rep := mazegen.Generate(p)
		if _, err := store.SaveRun(storage.NewRun("", p, rep, rows)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewSessionModel(ExplorerConfig{}, store, "tester", 100, 40)
	m, _ = sessionPress(t, m, "tab")
	if m.screen != screenHistory {
		t.Fatalf("screen = %v, expected history", m.screen)
	}
	if got := len(m.history.Runs()); got != 3 {
		t.Errorf("all tab shows %d runs, expected 3", got)
	}

	// all -> solo -> solo-escape -> duel
	m, _ = sessionPress(t, m, "tab", "tab", "tab")
	if m.history.mode() != "duel" {
		t.Fatalf("mode = %q, expected duel", m.history.mode())
	}
	if got := len(m.history.Runs()); got != 2 {
		t.Errorf("duel tab shows %d runs, expected 2", got)
	}

	m, _ = sessionPress(t, m, "shift+tab")
	if got := len(m.history.Runs()); got != 0 {
		t.Errorf("solo-escape tab shows %d runs, expected 0", got)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty tab should explain that nothing was recorded")
	}

	m, _ = sessionPress(t, m, "esc")
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionWithoutStore(t *testing.T) {
	m := NewSessionModel(ExplorerConfig{}, nil, "", 80, 24)
	m, _ = sessionPress(t, m, "tab")
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("history without a store should say it is unavailable")
	}

	m, _ = sessionPress(t, m, "esc", "enter")
	if m.screen != screenExplorer || m.explorer.RunID() != "" {
		t.Error("explorer should run without recording when there is no store")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(ExplorerConfig{}, nil, "", 80, 24)
	m, cmd := sessionPress(t, m, "q")
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
