package maze

import (
	"github.com/vovakirdan/tank-maze/internal/core"
)

// Sight classifies what lies between two points.
type Sight int

const (
	SightClear        Sight = 0 // nothing blocks
	SightDestructible Sight = 1 // a destructible obstacle blocks, no solid one
	SightSolid        Sight = 2 // a solid obstacle blocks
)

// String returns a human-readable name for the classification.
func (s Sight) String() string {
	switch s {
	case SightClear:
		return "clear"
	case SightDestructible:
		return "destructible"
	case SightSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// walkLine visits every cell on the Bresenham line from a to b, both
// included, until visit returns false.
func walkLine(a, b GridPos, visit func(GridPos) bool) {
	x0, y0 := a.X, a.Y
	dx := core.Abs(b.X - x0)
	dy := core.Abs(b.Y - y0)
	sx, sy := 1, 1
	if x0 >= b.X {
		sx = -1
	}
	if y0 >= b.Y {
		sy = -1
	}
	err := dx - dy

	for {
		if !visit(GridPos{X: x0, Y: y0}) {
			return
		}
		if x0 == b.X && y0 == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// CheckLineOfSight classifies the cell line between two world points.
// A solid cell anywhere on the line wins over destructible ones.
func (g *Grid) CheckLineOfSight(start, end core.Vec2) Sight {
	result := SightClear
	walkLine(g.WorldToGrid(start), g.WorldToGrid(end), func(p GridPos) bool {
		switch g.KindAt(p) {
		case Solid:
			result = SightSolid
			return false
		case Destructible:
			result = SightDestructible
		}
		return true
	})
	return result
}

// CheckBulletPath samples the segment from start to target at a fraction of
// the tile size and reports the first obstacle a projectile would strike.
// Sampling stops at the first obstacle, so whatever lies behind a
// destructible cell is never reported.
func (g *Grid) CheckBulletPath(start, target core.Vec2) Sight {
	delta := target.Sub(start)
	dist := delta.Len()
	if dist < 1 {
		return SightClear
	}
	dir := delta.Scale(1 / dist)
	step := g.opts.TileSize * g.opts.BulletStepFraction
	steps := int(dist/step) + 1

	for i := 1; i <= steps; i++ {
		t := float64(i) * step
		if t > dist {
			t = dist
		}
		pos := start.Add(dir.Scale(t))

		switch g.KindAt(g.WorldToGrid(pos)) {
		case Solid:
			return SightSolid
		case Destructible:
			return SightDestructible
		}

		if target.Dist(pos) < step {
			break
		}
	}
	return SightClear
}

// FirstBlockedPosition returns the center of the first obstacle cell on the
// cell line from start to end, or end itself when the line is clear.
func (g *Grid) FirstBlockedPosition(start, end core.Vec2) core.Vec2 {
	blocked := end
	walkLine(g.WorldToGrid(start), g.WorldToGrid(end), func(p GridPos) bool {
		if g.KindAt(p).IsObstacle() {
			blocked = g.GridToWorld(p)
			return false
		}
		return true
	})
	return blocked
}

// LineCells returns the cells on the line from start to end, both ends
// included, in walking order.
func (g *Grid) LineCells(start, end core.Vec2) []GridPos {
	var cells []GridPos
	walkLine(g.WorldToGrid(start), g.WorldToGrid(end), func(p GridPos) bool {
		cells = append(cells, p)
		return true
	})
	return cells
}
