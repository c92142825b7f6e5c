package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tank-maze/internal/maze"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultMazeYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultMazeConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "generation:\n  width: 41\n  dual_spawn: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Generation.Width != 41 || !cfg.Generation.DualSpawn {
		t.Errorf("overrides not applied: %+v", cfg.Generation)
	}
	if cfg.Generation.Height != DefaultMazeConfig().Generation.Height {
		t.Errorf("unset keys should keep defaults, height = %d", cfg.Generation.Height)
	}
	if cfg.Grid.TileSize != maze.DefaultTileSize {
		t.Errorf("tile size = %v, expected default", cfg.Grid.TileSize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"malformed", writeFile(t, dir, "bad.yaml", "grid: [1, 2"), "failed to parse"},
		{"invalid", writeFile(t, dir, "range.yaml", "generation:\n  destructible_ratio: 2\n"), "destructible_ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("without files Load() = %+v, expected defaults", cfg)
	}

	writeFile(t, work, filepath.Join("configs", "maze.yaml"), "generation:\n  enemies: 7\n")
	if cfg, _ := Load(""); cfg.Generation.Enemies != 7 {
		t.Errorf("local config not used, enemies = %d", cfg.Generation.Enemies)
	}

	writeFile(t, home, filepath.Join(".tankmaze", "configs", "maze.yaml"), "generation:\n  enemies: 9\n")
	if cfg, _ := Load(""); cfg.Generation.Enemies != 9 {
		t.Errorf("user config should win over local, enemies = %d", cfg.Generation.Enemies)
	}

	// An invalid user file is skipped.
	writeFile(t, home, filepath.Join(".tankmaze", "configs", "maze.yaml"), "generation:\n  enemies: -1\n")
	if cfg, _ := Load(""); cfg.Generation.Enemies != 7 {
		t.Errorf("invalid user config should fall through to local, enemies = %d", cfg.Generation.Enemies)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
		ok     bool
	}{
		{"defaults", func(*MazeConfig) {}, true},
		{"zero tile", func(c *MazeConfig) { c.Grid.TileSize = 0 }, false},
		{"huge radius", func(c *MazeConfig) { c.Grid.CornerRadius = 31 }, false},
		{"huge inset", func(c *MazeConfig) { c.Grid.WallInset = 30 }, false},
		{"zero health", func(c *MazeConfig) { c.Grid.WallHealth = 0 }, false},
		{"negative enemies", func(c *MazeConfig) { c.Generation.Enemies = -1 }, false},
		{"ratio above one", func(c *MazeConfig) { c.Generation.DestructibleRatio = 1.5 }, false},
		{"cheap walls", func(c *MazeConfig) { c.Pathfinding.DestructibleCost = 0.5 }, false},
		{"coarse bullets", func(c *MazeConfig) { c.Sight.BulletStepFraction = 0.9 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Grid.TileSize = -1
	cfg.Generation.Enemies = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) < 2 {
		t.Errorf("expected every problem to be reported, got %v", err)
	}
}

func TestConversions(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Generation.DualSpawn = true

	if opts := cfg.MazeOptions(); opts != maze.DefaultOptions() {
		t.Errorf("MazeOptions() = %+v, expected defaults", opts)
	}
	p := cfg.Params()
	if p.Width != cfg.Generation.Width || p.EnemyCount != cfg.Generation.Enemies || !p.DualSpawn {
		t.Errorf("Params() = %+v", p)
	}
}

func TestDensityPresets(t *testing.T) {
	for _, name := range []string{"", "sparse", "normal", "dense"} {
		if _, err := ParseDensity(name); err != nil {
			t.Errorf("ParseDensity(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseDensity("extreme"); err == nil {
		t.Error("ParseDensity should reject unknown names")
	}

	prev := -1.0
	for _, preset := range DensityPresets() {
		cfg := DefaultMazeConfig()
		ApplyDensityPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s produced invalid config: %v", preset, err)
		}
		if cfg.Generation.DestructibleRatio <= prev {
			t.Errorf("%s ratio %v should exceed the previous preset", preset, cfg.Generation.DestructibleRatio)
		}
		prev = cfg.Generation.DestructibleRatio
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultMazeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data)
	if err != nil || cfg != DefaultMazeConfig() {
		t.Errorf("round trip = %+v, %v", cfg, err)
	}
}
