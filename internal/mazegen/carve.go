package mazegen

import (
	"github.com/vovakirdan/tank-maze/internal/maze"
)

// carveDirs are room-to-room steps: up, right, down, left.
var carveDirs = [4]maze.GridPos{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// carveFrame is one room on the backtracking stack with its shuffled
// direction order and the next direction to try.
type carveFrame struct {
	room maze.GridPos
	dirs [4]int
	next int
}

// carve opens a perfect maze on the odd lattice starting at from.
//
// The search is depth-first with an explicit stack. Each room shuffles its
// directions when it is entered, so the visit order and the RNG sequence are
// those of the recursive formulation.
func (g *generator) carve(from maze.GridPos) {
	stack := []carveFrame{g.enterRoom(from)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := carveDirs[top.dirs[top.next]]
		top.next++

		room := top.room
		next := room.Add(d.X, d.Y)
		if !g.interior(next) || g.at(next) != maze.SymbolSolid {
			continue
		}
		g.put(room.Add(d.X/2, d.Y/2), maze.SymbolEmpty)
		stack = append(stack, g.enterRoom(next))
	}
}

func (g *generator) enterRoom(p maze.GridPos) carveFrame {
	g.put(p, maze.SymbolEmpty)
	f := carveFrame{room: p, dirs: [4]int{0, 1, 2, 3}}
	g.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}
