package maze

import (
	"math"

	"github.com/vovakirdan/tank-maze/internal/core"
)

// CheckCollision reports whether a circle at pos overlaps any Solid or
// Destructible obstacle. Only cells whose bounding box lies within radius of
// pos are examined; Empty and Exit cells never collide.
func (g *Grid) CheckCollision(pos core.Vec2, radius float64) bool {
	if g.rows == 0 || g.cols == 0 {
		return false
	}
	ts := g.opts.TileSize
	minC := core.Max(0, int(math.Floor((pos.X-radius)/ts)))
	maxC := core.Min(g.cols-1, int(math.Floor((pos.X+radius)/ts)))
	minR := core.Max(0, int(math.Floor((pos.Y-radius)/ts)))
	maxR := core.Min(g.rows-1, int(math.Floor((pos.Y+radius)/ts)))

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			p := GridPos{X: c, Y: r}
			if !g.cells[g.index(p)].Kind.IsObstacle() {
				continue
			}
			shape, _ := g.ShapeAt(p)
			if shape.OverlapsCircle(pos, radius) {
				return true
			}
		}
	}
	return false
}
