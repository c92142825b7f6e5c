package maze

import (
	"errors"
	"strings"
)

// Encoding symbols, one per cell.
const (
	SymbolSolid        = '#'
	SymbolDestructible = '*'
	SymbolReward       = 'G'
	SymbolHeal         = 'H'
	SymbolEmpty        = '.'
	SymbolStart        = 'S'
	SymbolExit         = 'E'
	SymbolEnemy        = 'X'
	SymbolSpawn1       = '1'
	SymbolSpawn2       = '2'
)

// ErrEmptyEncoding is returned when decoding input with no cells.
var ErrEmptyEncoding = errors.New("maze: empty encoding")

// Decode builds a Grid from its textual encoding, one string per row.
// Rows may be shorter than the widest row; missing cells are Empty.
// Unknown symbols decode as Empty. Derived positions and corner flags are
// populated in the same pass.
func Decode(rows []string, opts Options) (*Grid, error) {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if len(rows) == 0 || cols == 0 {
		return nil, ErrEmptyEncoding
	}

	g := NewGrid(len(rows), cols, opts)
	for r, row := range rows {
		g.rowLen[r] = len(row)
		for c := 0; c < len(row); c++ {
			p := GridPos{X: c, Y: r}
			g.cells[g.index(p)] = g.decodeSymbol(row[c], p)
		}
	}

	g.calculateCorners()
	return g, nil
}

// MustDecode is like Decode but panics on error. Intended for fixtures.
func MustDecode(rows []string, opts Options) *Grid {
	g, err := Decode(rows, opts)
	if err != nil {
		panic(err)
	}
	return g
}

// decodeSymbol converts one symbol, recording derived positions on g.
func (g *Grid) decodeSymbol(ch byte, p GridPos) Cell {
	health := g.opts.WallHealth
	center := g.GridToWorld(p)

	switch ch {
	case SymbolSolid:
		return Cell{Kind: Solid}
	case SymbolDestructible:
		return newDestructible(AttrNone, health)
	case SymbolReward:
		return newDestructible(AttrReward, health)
	case SymbolHeal:
		return newDestructible(AttrHeal, health)
	case SymbolStart:
		g.start = center
		return Cell{Kind: Empty, Marker: MarkerStart}
	case SymbolExit:
		g.exit = center
		return Cell{Kind: Exit}
	case SymbolEnemy:
		g.enemySpawns = append(g.enemySpawns, center)
		return Cell{Kind: Empty, Marker: MarkerEnemy}
	case SymbolSpawn1:
		g.spawns[0], g.spawnSet[0] = center, true
		return Cell{Kind: Empty, Marker: MarkerSpawn1}
	case SymbolSpawn2:
		g.spawns[1], g.spawnSet[1] = center, true
		return Cell{Kind: Empty, Marker: MarkerSpawn2}
	default:
		return Cell{Kind: Empty}
	}
}

// Encode projects the current cell state back to text.
// A destroyed obstacle encodes as '.', the same as an originally empty cell.
func (g *Grid) Encode() []string {
	out := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for c := 0; c < g.rowLen[r]; c++ {
			sb.WriteByte(encodeCell(g.cells[g.index(GridPos{X: c, Y: r})]))
		}
		out[r] = sb.String()
	}
	return out
}

// String returns the encoding joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Encode(), "\n")
}

func encodeCell(c Cell) byte {
	switch c.Kind {
	case Solid:
		return SymbolSolid
	case Destructible:
		switch c.Attribute {
		case AttrReward:
			return SymbolReward
		case AttrHeal:
			return SymbolHeal
		default:
			return SymbolDestructible
		}
	case Exit:
		return SymbolExit
	}

	switch c.Marker {
	case MarkerStart:
		return SymbolStart
	case MarkerEnemy:
		return SymbolEnemy
	case MarkerSpawn1:
		return SymbolSpawn1
	case MarkerSpawn2:
		return SymbolSpawn2
	default:
		return SymbolEmpty
	}
}
