package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/mazegen"
	"github.com/vovakirdan/tank-maze/internal/storage"
)

var explorerFixture = []string{
	"#######",
	"#S....#",
	"#.###.#",
	"#..*..#",
	"#######",
}

func fixtureExplorer(t *testing.T) ExplorerModel {
	t.Helper()
	g := maze.MustDecode(explorerFixture, maze.DefaultOptions())
	return newExplorerFromGrid(ExplorerConfig{Preset: "test"}, g)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to the explorer and returns the final model and command.
func press(t *testing.T, m ExplorerModel, keys ...string) (ExplorerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		em, ok := next.(ExplorerModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = em
	}
	return m, cmd
}

func TestExplorerStartsOnStart(t *testing.T) {
	m := fixtureExplorer(t)
	if m.cursor != (maze.GridPos{X: 1, Y: 1}) {
		t.Errorf("cursor = %v, expected the start cell", m.cursor)
	}
}

func TestExplorerCursorStaysInBounds(t *testing.T) {
	m := fixtureExplorer(t)
	m, _ = press(t, m, "up", "up", "left", "left", "left")
	if m.cursor != (maze.GridPos{X: 0, Y: 0}) {
		t.Errorf("cursor = %v, expected (0,0)", m.cursor)
	}
}

func TestExplorerTankCollisionProbe(t *testing.T) {
	m := fixtureExplorer(t)
	if info := m.cellInfo(); !strings.Contains(info, "tank fits") {
		t.Errorf("cellInfo() on the start = %q, expected the tank to fit", info)
	}

	m, _ = press(t, m, "up")
	if info := m.cellInfo(); !strings.Contains(info, "tank collides") {
		t.Errorf("cellInfo() on a wall = %q, expected a collision", info)
	}

	// A tank wider than the corridor touches the walls around the start.
	g := maze.MustDecode(explorerFixture, maze.DefaultOptions())
	wide := newExplorerFromGrid(ExplorerConfig{TankRadius: 35}, g)
	if info := wide.cellInfo(); !strings.Contains(info, "tank collides") {
		t.Errorf("cellInfo() with radius 35 = %q, expected a collision", info)
	}
}

func TestExplorerRoute(t *testing.T) {
	m := fixtureExplorer(t)

	m, _ = press(t, m, "p")
	if !strings.Contains(m.status, "mark") {
		t.Errorf("route without mark status = %q", m.status)
	}

	m, _ = press(t, m, " ", "right", "right", "right", "right", "p")
	if len(m.overlay.Path) != 4 {
		t.Fatalf("route = %v, expected 4 steps", m.overlay.Path)
	}
	if last := m.overlay.Path[3]; last != (maze.GridPos{X: 5, Y: 1}) {
		t.Errorf("route ends at %v", last)
	}
	if !strings.Contains(m.status, "4 steps") {
		t.Errorf("status = %q", m.status)
	}
}

func TestExplorerBreachRoute(t *testing.T) {
	m := fixtureExplorer(t)
	// Mark (1,3), target (5,3): the plain detour runs around the top.
	m, _ = press(t, m, "down", "down", " ", "right", "right", "right", "right", "P")

	if len(m.overlay.Path) != 4 {
		t.Fatalf("breach route = %v, expected straight 4 steps", m.overlay.Path)
	}
	if !strings.Contains(m.status, "first wall at (3,3)") {
		t.Errorf("status = %q", m.status)
	}

	m, _ = press(t, m, "p")
	if len(m.overlay.Path) != 8 {
		t.Errorf("plain route = %d steps, expected the 8 step detour", len(m.overlay.Path))
	}
}

func TestExplorerSightProbe(t *testing.T) {
	m := fixtureExplorer(t)
	m, _ = press(t, m, "down", "down", " ", "right", "right", "right", "right", "v")

	if len(m.overlay.Line) != 5 {
		t.Errorf("sight line = %v, expected 5 cells", m.overlay.Line)
	}
	if m.overlay.LineColor != core.ColorEnemy {
		t.Errorf("blocked line colour = %v", m.overlay.LineColor)
	}
	if !strings.Contains(m.status, "bullet destructible") {
		t.Errorf("status = %q", m.status)
	}
}

func TestExplorerFireResetAndBuild(t *testing.T) {
	m := fixtureExplorer(t)
	wall := maze.GridPos{X: 3, Y: 3}

	// Move to the destructible wall and shoot it down.
	m, _ = press(t, m, "down", "down", "right", "right", "f")
	if !strings.Contains(m.status, "health 75%") {
		t.Errorf("status after one shot = %q", m.status)
	}
	m, _ = press(t, m, "f", "f", "f")
	if m.grid.KindAt(wall) != maze.Empty {
		t.Fatalf("wall kind = %v after four shots", m.grid.KindAt(wall))
	}
	if !strings.Contains(m.status, "destroyed") {
		t.Errorf("status = %q", m.status)
	}

	m, _ = press(t, m, "x")
	if m.grid.KindAt(wall) != maze.Destructible {
		t.Errorf("reset should restore the wall, got %v", m.grid.KindAt(wall))
	}

	m, _ = press(t, m, "left", "w")
	if m.grid.KindAt(maze.GridPos{X: 2, Y: 3}) != maze.Destructible {
		t.Error("wall should be placed on the open cell")
	}

	// The start cell never takes a wall.
	m, _ = press(t, m, "up", "up", "left", "w")
	if m.grid.KindAt(maze.GridPos{X: 1, Y: 1}) != maze.Empty {
		t.Error("start cell should stay open")
	}
	if !strings.Contains(m.status, "cannot") {
		t.Errorf("status = %q", m.status)
	}
}

func TestExplorerBackAndQuit(t *testing.T) {
	m := fixtureExplorer(t)

	back, cmd := press(t, m, "esc")
	if !back.BackToMenu() || cmd != nil {
		t.Error("esc should request the menu without quitting")
	}

	m.standalone = true
	back, cmd = press(t, m, "esc")
	if !back.IsQuitting() || cmd == nil {
		t.Error("standalone esc should quit")
	}

	quit, cmd := press(t, fixtureExplorer(t), "q")
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting explorer should render nothing")
	}
}

func TestExplorerStatusExpires(t *testing.T) {
	m := fixtureExplorer(t)
	m, _ = press(t, m, "x")
	seq := m.statusSeq

	next, _ := m.Update(statusExpiredMsg{seq: seq - 1})
	m = next.(ExplorerModel)
	if m.status == "" {
		t.Error("stale expiry should keep the newer status")
	}

	next, _ = m.Update(statusExpiredMsg{seq: seq})
	m = next.(ExplorerModel)
	if m.status != "" {
		t.Errorf("status = %q, expected cleared", m.status)
	}
}

func TestExplorerViewShowsGridAndHelp(t *testing.T) {
	m := fixtureExplorer(t)
	view := m.View()
	for _, want := range []string{"TANK MAZE - test", "[]", "mark", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExplorerRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	p := mazegen.DefaultParams()
	p.Seed = 11
	m, err := NewExplorerModel(ExplorerConfig{Preset: "solo", Params: p}, store)
	if err != nil {
		t.Fatalf("NewExplorerModel() failed: %v", err)
	}
	if m.Report().Seed != 11 {
		t.Errorf("report seed = %d", m.Report().Seed)
	}

	run, err := store.RunByID(m.RunID())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Digest != storage.Digest(m.Grid().Encode()) {
		t.Error("recorded digest should match the explored maze")
	}

	m, _ = press(t, m, "n")
	if m.Report().Seed == 11 {
		t.Error("new maze should use a fresh seed")
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("history has %d runs, expected 2", len(runs))
	}
}
