package tui

import (
	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
)

// CellWidth is the number of terminal columns one grid cell occupies.
// Terminal glyphs are about twice as tall as wide, so two columns keep cells square.
const CellWidth = 2

// damagedThreshold is the health ratio below which obstacles look cracked.
const damagedThreshold = 0.5

// Overlay holds the transient layers painted over the grid.
type Overlay struct {
	Path       []maze.GridPos // route cells, in order
	Line       []maze.GridPos // sight probe cells
	LineColor  core.Color
	Cursor     maze.GridPos
	ShowCursor bool
	Anchor     maze.GridPos
	ShowAnchor bool
}

// glyph is the two-column picture of one cell.
type glyph struct {
	left, right rune
	color       core.Color
}

// Fill runes by obstacle kind and state.
const (
	runeSolid   = '█'
	runeFresh   = '▓'
	runeCracked = '▒'
	runeExit    = '░'
)

// PaintGrid draws the grid onto s with its top-left cell at column x0, row y0.
func PaintGrid(s *core.Screen, g *maze.Grid, ov Overlay, x0, y0 int) {
	for y := range g.Rows() {
		for x := range g.Cols() {
			p := maze.GridPos{X: x, Y: y}
			putGlyph(s, x0, y0, p, cellGlyph(g, p))
		}
	}

	lineColor := ov.LineColor
	if lineColor == core.ColorDefault {
		lineColor = core.ColorSight
	}
	for _, p := range ov.Line {
		putGlyph(s, x0, y0, p, overlayGlyph(g, p, '·', lineColor))
	}
	for _, p := range ov.Path {
		putGlyph(s, x0, y0, p, overlayGlyph(g, p, '•', core.ColorPath))
	}

	if ov.ShowAnchor && g.InBounds(ov.Anchor) {
		putGlyph(s, x0, y0, ov.Anchor, glyph{left: '<', right: '>', color: core.ColorSight})
	}
	if ov.ShowCursor && g.InBounds(ov.Cursor) {
		putGlyph(s, x0, y0, ov.Cursor, glyph{left: '[', right: ']', color: core.ColorCursor})
	}
}

func putGlyph(s *core.Screen, x0, y0 int, p maze.GridPos, gl glyph) {
	sx := x0 + p.X*CellWidth
	sy := y0 + p.Y
	s.Set(sx, sy, gl.left, gl.color)
	s.Set(sx+1, sy, gl.right, gl.color)
}

// overlayGlyph marks open cells with r and tints obstacles in place.
func overlayGlyph(g *maze.Grid, p maze.GridPos, r rune, c core.Color) glyph {
	gl := cellGlyph(g, p)
	if g.KindAt(p) == maze.Empty {
		gl.left, gl.right = r, ' '
		if marker := markerRune(g, p); marker != 0 {
			gl.left = marker
		}
	}
	gl.color = c
	return gl
}

// cellGlyph picks the runes of one cell. Obstacles drop the quadrant of every
// rounded corner, so smooth walls read as rounded blobs in the terminal.
func cellGlyph(g *maze.Grid, p maze.GridPos) glyph {
	cell, ok := g.Cell(p)
	if !ok {
		return glyph{left: ' ', right: ' '}
	}

	switch cell.Kind {
	case maze.Empty:
		if marker := markerRune(g, p); marker != 0 {
			return glyph{left: marker, right: ' ', color: markerColor(cell.Marker)}
		}
		return glyph{left: ' ', right: ' '}
	case maze.Exit:
		return shaped(g, p, runeExit, core.ColorExit)
	case maze.Solid:
		return shaped(g, p, runeSolid, core.ColorSolid)
	}

	fill := runeFresh
	if cell.HealthRatio() < damagedThreshold {
		fill = runeCracked
	}
	return shaped(g, p, fill, destructibleColor(cell))
}

func shaped(g *maze.Grid, p maze.GridPos, fill rune, c core.Color) glyph {
	gl := glyph{left: fill, right: fill, color: c}
	shape, ok := g.ShapeAt(p)
	if !ok {
		return gl
	}
	r := shape.Rounded

	switch {
	case r[maze.TopLeft] && r[maze.BottomLeft]:
		gl.left = '▐'
	case r[maze.TopLeft]:
		gl.left = '▟'
	case r[maze.BottomLeft]:
		gl.left = '▜'
	}
	switch {
	case r[maze.TopRight] && r[maze.BottomRight]:
		gl.right = '▌'
	case r[maze.TopRight]:
		gl.right = '▙'
	case r[maze.BottomRight]:
		gl.right = '▛'
	}
	return gl
}

func destructibleColor(c maze.Cell) core.Color {
	switch c.Attribute {
	case maze.AttrReward:
		return core.ColorReward
	case maze.AttrHeal:
		return core.ColorHeal
	}
	if c.HealthRatio() < damagedThreshold {
		return core.ColorDamaged
	}
	return core.ColorDestructible
}

// markerRune returns the placement symbol shown on an open cell, or 0.
func markerRune(g *maze.Grid, p maze.GridPos) rune {
	cell, _ := g.Cell(p)
	switch cell.Marker {
	case maze.MarkerStart:
		return maze.SymbolStart
	case maze.MarkerEnemy:
		return maze.SymbolEnemy
	case maze.MarkerSpawn1:
		return maze.SymbolSpawn1
	case maze.MarkerSpawn2:
		return maze.SymbolSpawn2
	}
	return 0
}

func markerColor(m maze.Marker) core.Color {
	switch m {
	case maze.MarkerStart:
		return core.ColorStart
	case maze.MarkerEnemy:
		return core.ColorEnemy
	default:
		return core.ColorSpawn
	}
}

// RenderGrid paints the grid alone and returns it as styled text.
func RenderGrid(g *maze.Grid, ov Overlay) string {
	s := core.NewScreen(g.Cols()*CellWidth, g.Rows())
	PaintGrid(s, g, ov, 0, 0)
	return RenderScreen(s)
}

// PlainGrid paints the grid alone and returns it without colour.
func PlainGrid(g *maze.Grid, ov Overlay) string {
	s := core.NewScreen(g.Cols()*CellWidth, g.Rows())
	PaintGrid(s, g, ov, 0, 0)
	return s.String()
}
