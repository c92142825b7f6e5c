package mazegen

import (
	"testing"

	"github.com/vovakirdan/tank-maze/internal/maze"
)

// latticeWith returns a 5x5 all-wall generator with sym at (1,1).
func latticeWith(sym byte) *generator {
	g := newGenerator(Params{Width: 5, Height: 5, Seed: 1, DestructibleRatio: 1})
	g.put(maze.GridPos{X: 1, Y: 1}, sym)
	return g
}

func TestExposedOnlyByEmptyStartOrExit(t *testing.T) {
	tests := []struct {
		name string
		sym  byte
		want bool
	}{
		{"empty", maze.SymbolEmpty, true},
		{"start", maze.SymbolStart, true},
		{"exit", maze.SymbolExit, true},
		{"enemy", maze.SymbolEnemy, false},
		{"spawn 1", maze.SymbolSpawn1, false},
		{"spawn 2", maze.SymbolSpawn2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := latticeWith(tt.sym)
			wall := maze.GridPos{X: 2, Y: 1}
			if got := g.exposed(wall); got != tt.want {
				t.Errorf("exposed(%v) next to %q = %v, want %v", wall, tt.sym, got, tt.want)
			}

			g.placeDestructibles()
			converted := g.at(wall) != maze.SymbolSolid
			if converted != tt.want {
				t.Errorf("wall next to %q converted = %v, want %v (symbol %q)", tt.sym, converted, tt.want, g.at(wall))
			}
		})
	}
}

func TestWallTouchingOnlyEnemyStaysSolid(t *testing.T) {
	g := latticeWith(maze.SymbolEnemy)
	g.put(maze.GridPos{X: 3, Y: 3}, maze.SymbolEmpty)
	g.placeDestructibles()

	for _, p := range []maze.GridPos{{X: 2, Y: 1}, {X: 1, Y: 2}} {
		if g.at(p) != maze.SymbolSolid {
			t.Errorf("wall at %v touches only an enemy marker but became %q", p, g.at(p))
		}
	}
	for _, p := range []maze.GridPos{{X: 3, Y: 2}, {X: 2, Y: 3}} {
		if g.at(p) == maze.SymbolSolid {
			t.Errorf("wall at %v touches an empty cell but stayed solid", p)
		}
	}
	if g.at(maze.GridPos{X: 2, Y: 2}) != maze.SymbolSolid {
		t.Error("enclosed wall at (2,2) should stay solid")
	}
}
