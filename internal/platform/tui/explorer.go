package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/mazegen"
	"github.com/vovakirdan/tank-maze/internal/storage"
)

// DefaultFireDamage is the damage of one explorer shot.
const DefaultFireDamage = 25.0

// DefaultTankShare is the default tank radius as a fraction of the tile size.
const DefaultTankShare = 0.3

// ExplorerConfig holds everything needed to generate and probe a maze.
type ExplorerConfig struct {
	Preset           string
	Params           mazegen.Params
	Options          maze.Options
	DestructibleCost float64
	FireDamage       float64
	TankRadius       float64 // collision probe radius, 0 means DefaultTankShare of a tile
}

func (c ExplorerConfig) withDefaults() ExplorerConfig {
	if c.DestructibleCost < 1 {
		c.DestructibleCost = maze.DefaultDestructibleCost
	}
	if c.FireDamage <= 0 {
		c.FireDamage = DefaultFireDamage
	}
	return c
}

// ExplorerModel is the Bubble Tea model of the interactive maze explorer.
// The cursor probes the grid; a mark anchors routes and sight lines.
type ExplorerModel struct {
	cfg      ExplorerConfig
	store    *storage.Store
	grid     *maze.Grid
	pristine *maze.Grid
	report   mazegen.Report
	runID    string

	cursor   maze.GridPos
	anchor   maze.GridPos
	anchored bool
	overlay  Overlay

	status    string
	statusSeq int

	keys       ExplorerKeyMap
	help       help.Model
	width      int
	height     int
	standalone bool
	backToMenu bool
	quitting   bool
}

// NewExplorerModel generates a maze from cfg and wraps it in an explorer.
// When store is not nil the run is recorded in the history.
func NewExplorerModel(cfg ExplorerConfig, store *storage.Store) (ExplorerModel, error) {
	cfg = cfg.withDefaults()
	m := ExplorerModel{cfg: cfg, store: store, keys: DefaultExplorerKeyMap(), help: help.New()}
	if err := m.generate(); err != nil {
		return ExplorerModel{}, err
	}
	m.setStatus(fmt.Sprintf("seed %d", m.report.Seed))
	return m, nil
}

// newExplorerFromGrid wraps an existing grid without generating or recording.
func newExplorerFromGrid(cfg ExplorerConfig, g *maze.Grid) ExplorerModel {
	m := ExplorerModel{cfg: cfg.withDefaults(), keys: DefaultExplorerKeyMap(), help: help.New()}
	m.adopt(g, mazegen.Report{Width: g.Cols(), Height: g.Rows()})
	return m
}

// generate builds a new maze and records the run.
func (m *ExplorerModel) generate() error {
	rows, rep := mazegen.Generate(m.cfg.Params)
	g, err := maze.Decode(rows, m.cfg.Options)
	if err != nil {
		return fmt.Errorf("tui: decode generated maze: %w", err)
	}
	m.adopt(g, rep)

	if m.store != nil {
		run := storage.NewRun(m.cfg.Preset, m.cfg.Params, rep, rows)
		//nolint:errcheck // Best-effort save
		m.store.SaveRun(run)
		m.runID = run.RunID
	}
	return nil
}

func (m *ExplorerModel) adopt(g *maze.Grid, rep mazegen.Report) {
	m.grid = g
	m.pristine = g.Clone()
	m.report = rep
	m.anchored = false
	m.overlay = Overlay{}
	m.cursor = g.WorldToGrid(g.Start())
	if spawn, ok := g.Spawn(1); ok {
		m.cursor = g.WorldToGrid(spawn)
	}
}

// Init initializes the explorer.
func (m ExplorerModel) Init() tea.Cmd {
	return expireStatus(m.statusSeq)
}

// Update handles messages.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Mark):
		m.anchor, m.anchored = m.cursor, true
		m.overlay.Path, m.overlay.Line = nil, nil
		return m, m.setStatus("mark set at " + m.cursor.String())
	case key.Matches(msg, m.keys.Route):
		return m, m.route()
	case key.Matches(msg, m.keys.Breach):
		return m, m.breach()
	case key.Matches(msg, m.keys.Sight):
		return m, m.sight()
	case key.Matches(msg, m.keys.Fire):
		return m, m.fire()
	case key.Matches(msg, m.keys.Build):
		return m, m.build()
	case key.Matches(msg, m.keys.Reset):
		m.grid = m.pristine.Clone()
		m.overlay.Path, m.overlay.Line = nil, nil
		return m, m.setStatus("maze reset")
	case key.Matches(msg, m.keys.Reroll):
		m.cfg.Params.Seed = 0
		if err := m.generate(); err != nil {
			return m, m.setStatus("generate failed: " + err.Error())
		}
		return m, m.setStatus(fmt.Sprintf("new maze, seed %d", m.report.Seed))
	}
	return m, nil
}

func (m *ExplorerModel) move(dx, dy int) {
	next := m.cursor.Add(dx, dy)
	if m.grid.InBounds(next) {
		m.cursor = next
	}
}

func (m *ExplorerModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return expireStatus(m.statusSeq)
}

func (m *ExplorerModel) center(p maze.GridPos) core.Vec2 {
	return m.grid.GridToWorld(p)
}

func (m *ExplorerModel) cells(path []core.Vec2) []maze.GridPos {
	out := make([]maze.GridPos, len(path))
	for i, v := range path {
		out[i] = m.grid.WorldToGrid(v)
	}
	return out
}

func (m *ExplorerModel) route() tea.Cmd {
	if !m.anchored {
		return m.setStatus("mark a start first")
	}
	m.overlay.Line = nil
	path := m.grid.FindPath(m.center(m.anchor), m.center(m.cursor))
	m.overlay.Path = m.cells(path)
	if len(path) == 0 {
		return m.setStatus("no route")
	}
	return m.setStatus(fmt.Sprintf("route: %d steps", len(path)))
}

func (m *ExplorerModel) breach() tea.Cmd {
	if !m.anchored {
		return m.setStatus("mark a start first")
	}
	m.overlay.Line = nil
	res := m.grid.FindPathThroughDestructible(m.center(m.anchor), m.center(m.cursor), m.cfg.DestructibleCost)
	m.overlay.Path = m.cells(res.Path)
	switch {
	case !res.Found():
		return m.setStatus("no route")
	case res.HasDestructibleWall:
		return m.setStatus(fmt.Sprintf("route: %d steps, first wall at %s", len(res.Path), res.FirstWallGrid))
	default:
		return m.setStatus(fmt.Sprintf("route: %d steps, no walls", len(res.Path)))
	}
}

func (m *ExplorerModel) sight() tea.Cmd {
	if !m.anchored {
		return m.setStatus("mark a start first")
	}
	from, to := m.center(m.anchor), m.center(m.cursor)
	los := m.grid.CheckLineOfSight(from, to)
	bullet := m.grid.CheckBulletPath(from, to)

	m.overlay.Path = nil
	m.overlay.Line = m.grid.LineCells(from, to)
	m.overlay.LineColor = core.ColorSight
	if bullet != maze.SightClear {
		m.overlay.LineColor = core.ColorEnemy
	}
	blocked := m.grid.WorldToGrid(m.grid.FirstBlockedPosition(from, to))
	return m.setStatus(fmt.Sprintf("sight %s, bullet %s, first block %s", los, bullet, blocked))
}

func (m *ExplorerModel) fire() tea.Cmd {
	res := m.grid.DamageAt(m.center(m.cursor), m.cfg.FireDamage)
	switch {
	case res.Destroyed:
		m.overlay.Path, m.overlay.Line = nil, nil
		return m.setStatus(fmt.Sprintf("destroyed, attribute %s", res.Attribute))
	case res.Hit:
		cell, _ := m.grid.Cell(m.cursor)
		if cell.Kind == maze.Solid {
			return m.setStatus("solid wall absorbs the shot")
		}
		return m.setStatus(fmt.Sprintf("hit, health %.0f%%", cell.HealthRatio()*100))
	default:
		return m.setStatus("nothing to hit")
	}
}

func (m *ExplorerModel) build() tea.Cmd {
	if !m.grid.PlaceWall(m.center(m.cursor)) {
		return m.setStatus("cannot place a wall here")
	}
	return m.setStatus("wall placed")
}

// View renders the explorer.
func (m ExplorerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	title := "TANK MAZE"
	if m.cfg.Preset != "" {
		title += " - " + m.cfg.Preset
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render(m.summary()))
	b.WriteString("\n\n")

	ov := m.overlay
	ov.Cursor, ov.ShowCursor = m.cursor, true
	ov.Anchor, ov.ShowAnchor = m.anchor, m.anchored
	b.WriteString(RenderGrid(m.grid, ov))
	b.WriteString("\n\n")

	b.WriteString(m.cellInfo())
	b.WriteString("\n")
	b.WriteString(styleFor(core.ColorText).Render(m.status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ExplorerModel) summary() string {
	s := m.grid.Stats()
	return fmt.Sprintf("seed %d  %dx%d  walls %d  rewards %d  heals %d  enemies %d",
		m.report.Seed, m.grid.Cols(), m.grid.Rows(), s.Destructible, s.Reward, s.Heal, s.Enemies)
}

func (m ExplorerModel) cellInfo() string {
	cell, _ := m.grid.Cell(m.cursor)
	info := fmt.Sprintf("%s %s", m.cursor, cell.Kind)
	if cell.Kind == maze.Destructible {
		info += fmt.Sprintf(" %s %.0f/%.0f", cell.Attribute, cell.Health, cell.MaxHealth)
	}
	if shape, ok := m.grid.ShapeAt(m.cursor); ok && shape.Rounded.Count() > 0 {
		info += fmt.Sprintf(" rounded %d", shape.Rounded.Count())
	}
	if m.grid.CheckCollision(m.center(m.cursor), m.tankRadius()) {
		info += " | tank collides"
	} else {
		info += " | tank fits"
	}
	return info
}

func (m ExplorerModel) tankRadius() float64 {
	if m.cfg.TankRadius > 0 {
		return m.cfg.TankRadius
	}
	return m.grid.TileSize() * DefaultTankShare
}

// Grid returns the explored grid.
func (m ExplorerModel) Grid() *maze.Grid {
	return m.grid
}

// Report returns the generator report of the current maze.
func (m ExplorerModel) Report() mazegen.Report {
	return m.report
}

// RunID returns the history ID of the current maze, or "" when unrecorded.
func (m ExplorerModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m ExplorerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m ExplorerModel) BackToMenu() bool {
	return m.backToMenu
}

// RunExplorer runs the explorer as a standalone program.
func RunExplorer(cfg ExplorerConfig, store *storage.Store) error {
	model, err := NewExplorerModel(cfg, store)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
