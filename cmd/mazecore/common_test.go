package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tank-maze/internal/maze"
)

func TestParseGridPos(t *testing.T) {
	tests := []struct {
		in      string
		want    maze.GridPos
		wantErr bool
	}{
		{"3,4", maze.GridPos{X: 3, Y: 4}, false},
		{" 10 , 2 ", maze.GridPos{X: 10, Y: 2}, false},
		{"-1,0", maze.GridPos{X: -1, Y: 0}, false},
		{"3", maze.GridPos{}, true},
		{"a,b", maze.GridPos{}, true},
		{"1,2,3", maze.GridPos{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseGridPos(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errBadPosition) {
					t.Fatalf("parseGridPos(%q) error = %v, want errBadPosition", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseGridPos(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseGridPos(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadEncoding(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "level.txt")
	if err := os.WriteFile(path, []byte("###\r\n#S#\r\n#E#\r\n\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := readEncoding(path)
	if err != nil {
		t.Fatalf("readEncoding() error = %v", err)
	}
	want := []string{"###", "#S#", "#E#"}
	if len(rows) != len(want) {
		t.Fatalf("readEncoding() = %q, want %q", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readEncoding(empty); !errors.Is(err, maze.ErrEmptyEncoding) {
		t.Errorf("readEncoding(empty) error = %v, want ErrEmptyEncoding", err)
	}

	if _, err := readEncoding(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("readEncoding(missing) should fail")
	}
}

func TestEndpoints(t *testing.T) {
	g := maze.MustDecode([]string{
		"#####",
		"#S.E#",
		"#####",
	}, maze.DefaultOptions())

	from, to, err := endpoints(g, "", "")
	if err != nil {
		t.Fatalf("endpoints() error = %v", err)
	}
	if from != (maze.GridPos{X: 1, Y: 1}) || to != (maze.GridPos{X: 3, Y: 1}) {
		t.Errorf("endpoints() = %v, %v, want (1,1), (3,1)", from, to)
	}

	from, to, err = endpoints(g, "2,1", "1,1")
	if err != nil {
		t.Fatalf("endpoints() error = %v", err)
	}
	if from != (maze.GridPos{X: 2, Y: 1}) || to != (maze.GridPos{X: 1, Y: 1}) {
		t.Errorf("endpoints() = %v, %v, want (2,1), (1,1)", from, to)
	}

	if _, _, err := endpoints(g, "bad", ""); !errors.Is(err, errBadPosition) {
		t.Errorf("endpoints(bad) error = %v, want errBadPosition", err)
	}
}

func TestDuelEndpointsStartAtSpawnOne(t *testing.T) {
	g := maze.MustDecode([]string{
		"#####",
		"#1E2#",
		"#####",
	}, maze.DefaultOptions())

	from, _, err := endpoints(g, "", "")
	if err != nil {
		t.Fatalf("endpoints() error = %v", err)
	}
	if from != (maze.GridPos{X: 1, Y: 1}) {
		t.Errorf("from = %v, want spawn 1 at (1,1)", from)
	}
}

func TestFirstCollision(t *testing.T) {
	g := maze.MustDecode([]string{
		"#######",
		"#S...E#",
		"#######",
	}, maze.DefaultOptions())
	path := g.FindPath(g.Start(), g.Exit())

	if _, ok := firstCollision(g, path, 20); ok {
		t.Error("a radius 20 tank should clear a one-tile corridor")
	}
	hit, ok := firstCollision(g, path, 40)
	if !ok {
		t.Fatal("a radius 40 tank should not fit a one-tile corridor")
	}
	if hit != (maze.GridPos{X: 2, Y: 1}) {
		t.Errorf("first collision = %v, expected the first waypoint (2,1)", hit)
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23235":       "23235",
		"0.0.0.0:2222": "2222",
		"2222":         "2222",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
