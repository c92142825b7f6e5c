package maze

// obstacleAt reports whether p blocks corner rounding.
// Out-of-bounds positions count as obstacles so the maze border stays square.
func (g *Grid) obstacleAt(p GridPos) bool {
	return g.KindAt(p).IsObstacle()
}

// cornersFor derives the rounded corners of the cell at p from its four
// orthogonal neighbours: a corner is rounded when both neighbours sharing it
// are open.
func (g *Grid) cornersFor(p GridPos) Corners {
	switch g.KindAt(p) {
	case Solid, Destructible, Exit:
	default:
		return Corners{}
	}

	north := g.obstacleAt(p.Add(0, -1))
	east := g.obstacleAt(p.Add(1, 0))
	south := g.obstacleAt(p.Add(0, 1))
	west := g.obstacleAt(p.Add(-1, 0))

	return Corners{
		TopLeft:     !north && !west,
		TopRight:    !north && !east,
		BottomRight: !south && !east,
		BottomLeft:  !south && !west,
	}
}

// calculateCorners recomputes corner flags for the whole grid.
func (g *Grid) calculateCorners() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := GridPos{X: c, Y: r}
			g.cells[g.index(p)].Corners = g.cornersFor(p)
		}
	}
}

// refreshCornersAround recomputes p and its orthogonal neighbours, which are
// the only cells whose flags depend on p.
func (g *Grid) refreshCornersAround(p GridPos) {
	g.refreshCorners(p)
	for _, d := range orthogonal {
		g.refreshCorners(p.Add(d.X, d.Y))
	}
}

func (g *Grid) refreshCorners(p GridPos) {
	if !g.InBounds(p) {
		return
	}
	g.cells[g.index(p)].Corners = g.cornersFor(p)
}
