package mazegen

import (
	"fmt"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
)

// generator holds the state of one run on a byte lattice of encoding symbols.
type generator struct {
	p     Params
	w, h  int
	cells [][]byte
	rng   *core.RNG
	rep   Report
}

func newGenerator(p Params) *generator {
	p = p.Normalized()
	seed := p.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}

	g := &generator{
		p:   p,
		w:   p.Width,
		h:   p.Height,
		rng: core.NewRNG(uint64(seed)),
		rep: Report{Seed: seed, Width: p.Width, Height: p.Height},
	}
	g.cells = make([][]byte, g.h)
	for y := range g.cells {
		row := make([]byte, g.w)
		for x := range row {
			row[x] = maze.SymbolSolid
		}
		g.cells[y] = row
	}
	return g
}

// Generate produces the encoded rows of a new maze and a report of the run.
func Generate(p Params) ([]string, Report) {
	g := newGenerator(p)
	g.run()
	return g.rows(), g.rep
}

// Build generates a maze and decodes it into a Grid.
func Build(p Params, opts maze.Options) (*maze.Grid, Report, error) {
	rows, rep := Generate(p)
	grid, err := maze.Decode(rows, opts)
	if err != nil {
		return nil, rep, fmt.Errorf("mazegen: decode: %w", err)
	}
	return grid, rep, nil
}

func (g *generator) run() {
	g.carve(maze.GridPos{X: 1, Y: 1})

	if g.p.DualSpawn {
		g.placeDualSpawns()
		g.ensurePath(g.rep.Spawns[0], g.rep.Exit)
		g.ensurePath(g.rep.Spawns[1], g.rep.Exit)
	} else {
		g.placeStartAndExit()
		g.ensurePath(g.rep.Start, g.rep.Exit)
	}

	g.placeEnemies()
	g.placeDestructibles()
}

func (g *generator) rows() []string {
	out := make([]string, g.h)
	for y, row := range g.cells {
		out[y] = string(row)
	}
	return out
}

func (g *generator) at(p maze.GridPos) byte {
	return g.cells[p.Y][p.X]
}

func (g *generator) put(p maze.GridPos, sym byte) {
	g.cells[p.Y][p.X] = sym
}

func (g *generator) inBounds(p maze.GridPos) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// interior reports whether p lies inside the outer wall ring.
func (g *generator) interior(p maze.GridPos) bool {
	return p.X > 0 && p.X < g.w-1 && p.Y > 0 && p.Y < g.h-1
}

// emptyCells lists interior '.' cells in row-major order.
func (g *generator) emptyCells() []maze.GridPos {
	var out []maze.GridPos
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			if g.cells[y][x] == maze.SymbolEmpty {
				out = append(out, maze.GridPos{X: x, Y: y})
			}
		}
	}
	return out
}

func (g *generator) shuffle(cells []maze.GridPos) {
	g.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
}

// clampInterior pulls p inside the wall ring, or onto the lattice when the
// maze has no interior beyond a single cell.
func (g *generator) clampInterior(p maze.GridPos) maze.GridPos {
	return maze.GridPos{
		X: core.Clamp(p.X, 1, g.w-2),
		Y: core.Clamp(p.Y, 1, g.h-2),
	}
}

// fallbackCell resolves a fixed fallback position: clamped into the interior,
// moved to an orthogonal neighbour when it collides with a taken position,
// and forced open.
func (g *generator) fallbackCell(p maze.GridPos, taken ...maze.GridPos) maze.GridPos {
	p = g.clampInterior(p)
	candidates := []maze.GridPos{p, p.Add(0, 1), p.Add(1, 0), p.Add(0, -1), p.Add(-1, 0)}
	for _, c := range candidates {
		if g.inBounds(c) && !contains(taken, c) {
			p = c
			break
		}
	}
	if g.at(p) == maze.SymbolSolid {
		g.put(p, maze.SymbolEmpty)
	}
	return p
}

func contains(cells []maze.GridPos, p maze.GridPos) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
