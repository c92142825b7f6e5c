package maze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tank-maze/internal/core"
)

// Reference scale of the engine.
const (
	DefaultTileSize           = 60.0
	DefaultCornerRadius       = 12.0
	DefaultWallInset          = 1.0
	DefaultWallHealth         = 100.0
	DefaultBulletStepFraction = 0.05
	DefaultDestructibleCost   = 3.0
)

// Options configures the geometry and obstacle constants of a Grid.
// Zero fields are replaced by the package defaults.
type Options struct {
	TileSize           float64 // World units per cell
	CornerRadius       float64 // Radius of rounded obstacle corners
	WallInset          float64 // Gap between cell edge and obstacle shape
	WallHealth         float64 // Health of a fresh destructible obstacle
	BulletStepFraction float64 // Trajectory sampling step as a fraction of TileSize
}

// DefaultOptions returns the reference-scale options.
func DefaultOptions() Options {
	return Options{
		TileSize:           DefaultTileSize,
		CornerRadius:       DefaultCornerRadius,
		WallInset:          DefaultWallInset,
		WallHealth:         DefaultWallHealth,
		BulletStepFraction: DefaultBulletStepFraction,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TileSize <= 0 {
		o.TileSize = d.TileSize
	}
	if o.CornerRadius <= 0 {
		o.CornerRadius = d.CornerRadius * o.TileSize / d.TileSize
	}
	if o.WallInset <= 0 {
		o.WallInset = d.WallInset
	}
	if o.WallInset*2 >= o.TileSize {
		o.WallInset = 0
	}
	if o.WallHealth <= 0 {
		o.WallHealth = d.WallHealth
	}
	if o.BulletStepFraction <= 0 || o.BulletStepFraction > 0.5 {
		o.BulletStepFraction = d.BulletStepFraction
	}
	return o
}

// GridPos is an integer cell coordinate. X is the column, Y the row.
// It is comparable and can be used as a map key.
type GridPos struct {
	X, Y int
}

// String returns a string representation of the position.
func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the position offset by (dx, dy).
func (p GridPos) Add(dx, dy int) GridPos {
	return GridPos{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance to another position.
func (p GridPos) Manhattan(o GridPos) int {
	return core.Abs(p.X-o.X) + core.Abs(p.Y-o.Y)
}

// orthogonal offsets in north, east, south, west order
var orthogonal = [4]GridPos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is the authoritative typed cell array plus derived positions.
type Grid struct {
	rows, cols int
	rowLen     []int // encoded length of every row, for exact re-encoding
	cells      []Cell
	opts       Options

	start       core.Vec2
	exit        core.Vec2
	spawns      [2]core.Vec2
	spawnSet    [2]bool
	enemySpawns []core.Vec2
}

// NewGrid creates a rows x cols grid with every cell Empty.
// Builders and tests use it; generated grids come from Decode.
func NewGrid(rows, cols int, opts Options) *Grid {
	rows = core.Max(rows, 0)
	cols = core.Max(cols, 0)
	g := &Grid{
		rows:   rows,
		cols:   cols,
		rowLen: make([]int, rows),
		cells:  make([]Cell, rows*cols),
		opts:   opts.withDefaults(),
	}
	for r := range g.rowLen {
		g.rowLen[r] = cols
	}
	return g
}

func (g *Grid) index(p GridPos) int {
	return p.Y*g.cols + p.X
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the world size of one cell.
func (g *Grid) TileSize() float64 { return g.opts.TileSize }

// Options returns the effective options of the grid.
func (g *Grid) Options() Options { return g.opts }

// Size returns the world extent of the grid.
func (g *Grid) Size() core.Vec2 {
	return core.V(float64(g.cols)*g.opts.TileSize, float64(g.rows)*g.opts.TileSize)
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(p GridPos) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Cell returns the cell at p. The second result is false out of bounds.
func (g *Grid) Cell(p GridPos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// KindAt returns the kind at p. Out-of-bounds positions read as Solid.
func (g *Grid) KindAt(p GridPos) CellKind {
	if !g.InBounds(p) {
		return Solid
	}
	return g.cells[g.index(p)].Kind
}

// IsWalkable reports whether the cell at (row, col) is Empty or Exit.
func (g *Grid) IsWalkable(row, col int) bool {
	return g.KindAt(GridPos{X: col, Y: row}).IsWalkable()
}

// IsDestructible reports whether the cell at (row, col) is a destructible obstacle.
func (g *Grid) IsDestructible(row, col int) bool {
	return g.KindAt(GridPos{X: col, Y: row}) == Destructible
}

// WorldToGrid converts a world point to the cell containing it.
func (g *Grid) WorldToGrid(pos core.Vec2) GridPos {
	return GridPos{
		X: int(math.Floor(pos.X / g.opts.TileSize)),
		Y: int(math.Floor(pos.Y / g.opts.TileSize)),
	}
}

// GridToWorld returns the world-space center of a cell.
func (g *Grid) GridToWorld(p GridPos) core.Vec2 {
	ts := g.opts.TileSize
	return core.V(float64(p.X)*ts+ts/2, float64(p.Y)*ts+ts/2)
}

// CellRect returns the full world rectangle of a cell.
func (g *Grid) CellRect(p GridPos) core.Rect {
	ts := g.opts.TileSize
	return core.NewRect(float64(p.X)*ts, float64(p.Y)*ts, ts, ts)
}

// Start returns the single-player start position (cell center).
func (g *Grid) Start() core.Vec2 { return g.start }

// Exit returns the exit position (cell center).
func (g *Grid) Exit() core.Vec2 { return g.exit }

// Spawn returns the dual-spawn position i (1 or 2) and whether it was set.
func (g *Grid) Spawn(i int) (core.Vec2, bool) {
	if i < 1 || i > 2 {
		return core.Vec2{}, false
	}
	return g.spawns[i-1], g.spawnSet[i-1]
}

// EnemySpawns returns a copy of the enemy spawn positions in encoding order.
func (g *Grid) EnemySpawns() []core.Vec2 {
	out := make([]core.Vec2, len(g.enemySpawns))
	copy(out, g.enemySpawns)
	return out
}

// IsAtExit reports whether a circle reaches the exit cell.
func (g *Grid) IsAtExit(pos core.Vec2, radius float64) bool {
	return pos.Dist(g.exit) < radius+g.opts.TileSize/2
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Cell, len(g.cells))
	copy(c.cells, g.cells)
	c.rowLen = make([]int, len(g.rowLen))
	copy(c.rowLen, g.rowLen)
	c.enemySpawns = g.EnemySpawns()
	return &c
}

// Stats counts cells by kind and attribute.
type Stats struct {
	Empty        int
	Solid        int
	Destructible int
	Reward       int
	Heal         int
	Exit         int
	Enemies      int
}

// Stats returns the current cell census.
func (g *Grid) Stats() Stats {
	s := Stats{Enemies: len(g.enemySpawns)}
	for _, c := range g.cells {
		switch c.Kind {
		case Empty:
			s.Empty++
		case Solid:
			s.Solid++
		case Destructible:
			s.Destructible++
			switch c.Attribute {
			case AttrReward:
				s.Reward++
			case AttrHeal:
				s.Heal++
			}
		case Exit:
			s.Exit++
		}
	}
	return s
}

// set replaces a cell and refreshes the corner flags around it.
func (g *Grid) set(p GridPos, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[g.index(p)] = c
	g.refreshCornersAround(p)
}
