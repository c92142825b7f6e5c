package maze

import (
	"github.com/vovakirdan/tank-maze/internal/core"
)

// Shape is the rounded-rectangle outline of an obstacle cell.
// The same record drives rendering and collision.
type Shape struct {
	Bounds  core.Rect
	Radius  float64
	Rounded Corners
}

// ShapeAt returns the outline of the cell at p. The second result is false
// when the cell has no outline (Empty or out of bounds).
func (g *Grid) ShapeAt(p GridPos) (Shape, bool) {
	c, ok := g.Cell(p)
	if !ok || c.Kind == Empty {
		return Shape{}, false
	}

	bounds := g.CellRect(p).Inset(g.opts.WallInset)
	radius := g.opts.CornerRadius
	if half := bounds.W / 2; radius > half {
		radius = half
	}
	if half := bounds.H / 2; radius > half {
		radius = half
	}

	return Shape{Bounds: bounds, Radius: radius, Rounded: c.Corners}, true
}

// inner returns the rectangle left after removing the corner radius from
// every side. Its corners are the centers of the corner arcs.
func (s Shape) inner() core.Rect {
	return s.Bounds.Inset(s.Radius)
}

// corner returns which corner quadrant p falls into, if any.
func (s Shape) corner(p core.Vec2) (Corner, bool) {
	in := s.inner()
	left := p.X < in.X
	right := p.X > in.Right()
	top := p.Y < in.Y
	bottom := p.Y > in.Bottom()

	switch {
	case left && top:
		return TopLeft, true
	case right && top:
		return TopRight, true
	case right && bottom:
		return BottomRight, true
	case left && bottom:
		return BottomLeft, true
	}
	return 0, false
}

// cornerCenter returns the arc center of a corner.
func (s Shape) cornerCenter(c Corner) core.Vec2 {
	in := s.inner()
	switch c {
	case TopLeft:
		return core.V(in.X, in.Y)
	case TopRight:
		return core.V(in.Right(), in.Y)
	case BottomRight:
		return core.V(in.Right(), in.Bottom())
	default:
		return core.V(in.X, in.Bottom())
	}
}

// OverlapsCircle reports whether a circle strictly overlaps the shape.
//
// When the circle center lies in the exterior quadrant of a rounded corner the
// test is circle against the corner arc circle with the combined radius;
// everywhere else the shape is treated as its plain rectangle.
func (s Shape) OverlapsCircle(center core.Vec2, radius float64) bool {
	if c, ok := s.corner(center); ok && s.Rounded[c] {
		return core.CirclesOverlap(center, radius, s.cornerCenter(c), s.Radius)
	}
	return s.Bounds.CircleOverlaps(center, radius)
}
