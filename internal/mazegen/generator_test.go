package mazegen_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/mazegen"
)

func build(t *testing.T, p mazegen.Params) (*maze.Grid, mazegen.Report) {
	t.Helper()
	g, rep, err := mazegen.Build(p, maze.DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g, rep
}

func params(w, h int, seed int64, dual, escape bool) mazegen.Params {
	p := mazegen.DefaultParams()
	p.Width, p.Height, p.Seed = w, h, seed
	p.DualSpawn, p.Escape = dual, escape
	return p
}

func TestOddDimension(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-4, 3}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 5}, {30, 31}, {40, 41}, {41, 41},
	}
	for _, tt := range tests {
		if got := mazegen.OddDimension(tt.in); got != tt.want {
			t.Errorf("OddDimension(%d) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestGenerateOddDimensions(t *testing.T) {
	rows, rep := mazegen.Generate(params(40, 30, 7, false, false))
	if len(rows) != 31 {
		t.Fatalf("rows = %d, expected 31", len(rows))
	}
	for i, row := range rows {
		if len(row) != 41 {
			t.Fatalf("row %d width = %d, expected 41", i, len(row))
		}
	}
	if rep.Width != 41 || rep.Height != 31 {
		t.Errorf("report dimensions = %dx%d, expected 41x31", rep.Width, rep.Height)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, p := range []mazegen.Params{
		params(21, 15, 42, false, false),
		params(31, 21, 42, true, false),
		params(25, 25, 99, true, true),
		params(15, 11, 5, false, true),
	} {
		t.Run(p.Mode(), func(t *testing.T) {
			a, ra := mazegen.Generate(p)
			b, rb := mazegen.Generate(p)
			if strings.Join(a, "\n") != strings.Join(b, "\n") {
				t.Fatal("same parameters produced different mazes")
			}
			if ra.Seed != p.Seed || rb.Seed != p.Seed {
				t.Errorf("report seed = %d/%d, expected %d", ra.Seed, rb.Seed, p.Seed)
			}
		})
	}

	a, _ := mazegen.Generate(params(21, 15, 1, false, false))
	b, _ := mazegen.Generate(params(21, 15, 2, false, false))
	if strings.Join(a, "\n") == strings.Join(b, "\n") {
		t.Error("different seeds produced the same maze")
	}
}

func TestGenerateTimeSeed(t *testing.T) {
	_, rep := mazegen.Generate(params(11, 11, 0, false, false))
	if rep.Seed == 0 {
		t.Error("zero seed should be replaced by a time-derived one")
	}
}

func TestGenerateConnectivity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, dual := range []bool{false, true} {
			g, rep := build(t, params(31, 23, seed, dual, seed%2 == 0))
			exit := g.WorldToGrid(g.Exit())
			if exit != rep.Exit {
				t.Fatalf("seed %d: decoded exit %v, report %v", seed, exit, rep.Exit)
			}

			var starts []core.Vec2
			if dual {
				for i := 1; i <= 2; i++ {
					s, ok := g.Spawn(i)
					if !ok {
						t.Fatalf("seed %d: spawn %d missing", seed, i)
					}
					starts = append(starts, s)
				}
			} else {
				starts = append(starts, g.Start())
			}

			for _, s := range starts {
				if _, found := g.FindGridPath(g.WorldToGrid(s), exit); !found {
					t.Errorf("seed %d dual=%v: exit unreachable from %v", seed, dual, g.WorldToGrid(s))
				}
				if res := g.FindPathThroughDestructible(s, g.Exit(), maze.DefaultDestructibleCost); !res.Found() {
					t.Errorf("seed %d dual=%v: destructible-aware route missing", seed, dual)
				}
			}
		}
	}
}

func TestGeneratePerfectSkeleton(t *testing.T) {
	p := params(21, 15, 3, false, false)
	p.DestructibleRatio = 0
	g, rep := build(t, p)
	if rep.CarvedPaths != 0 {
		t.Skip("reachability repair changed the skeleton")
	}

	rooms := (21 / 2) * (15 / 2)
	s := g.Stats()
	if open := s.Empty + s.Exit; open != 2*rooms-1 {
		t.Errorf("open cells = %d, expected %d for a spanning tree", open, 2*rooms-1)
	}
	if s.Destructible != 0 {
		t.Errorf("ratio 0 produced %d destructible obstacles", s.Destructible)
	}
}

func TestGenerateBorderIsSolid(t *testing.T) {
	rows, _ := mazegen.Generate(params(25, 19, 11, true, false))
	last := len(rows) - 1
	for x := range rows[0] {
		if rows[0][x] != '#' || rows[last][x] != '#' {
			t.Fatalf("border column %d is not solid", x)
		}
	}
	for y := range rows {
		if rows[y][0] != '#' || rows[y][len(rows[y])-1] != '#' {
			t.Fatalf("border row %d is not solid", y)
		}
	}
}

func TestGenerateTinyMazeFallsBack(t *testing.T) {
	for _, dual := range []bool{false, true} {
		g, rep := build(t, params(1, 1, 9, dual, false))
		if g.Rows() != 3 || g.Cols() != 3 {
			t.Fatalf("tiny maze = %dx%d, expected 3x3", g.Rows(), g.Cols())
		}
		if len(rep.Fallbacks) == 0 {
			t.Errorf("dual=%v: expected fallbacks to be reported", dual)
		}
		exit := g.WorldToGrid(g.Exit())
		if g.KindAt(exit) != maze.Exit {
			t.Errorf("dual=%v: exit cell is %v", dual, g.KindAt(exit))
		}
		if !dual {
			if start := g.WorldToGrid(g.Start()); start == exit || !g.IsWalkable(start.Y, start.X) {
				t.Errorf("start %v must be open and distinct from exit %v", start, exit)
			}
		}
	}
}
