// Package config provides YAML-based configuration loading for the tank
// maze engine: grid geometry, generation defaults, routing weights and the
// history database location.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/mazegen"
)

// MazeConfig contains all tunable parameters.
type MazeConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Generation  GenerationConfig  `yaml:"generation"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Sight       SightConfig       `yaml:"sight"`
	Storage     StorageConfig     `yaml:"storage"`
}

// GridConfig defines world geometry and obstacle constants.
type GridConfig struct {
	TileSize     float64 `yaml:"tile_size"`
	CornerRadius float64 `yaml:"corner_radius"`
	WallInset    float64 `yaml:"wall_inset"`
	WallHealth   float64 `yaml:"wall_health"`
}

// GenerationConfig defines the default generator inputs.
type GenerationConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	Enemies           int     `yaml:"enemies"`
	DestructibleRatio float64 `yaml:"destructible_ratio"`
	DualSpawn         bool    `yaml:"dual_spawn"`
	Escape            bool    `yaml:"escape"`
}

// PathfindingConfig defines route search weights.
type PathfindingConfig struct {
	DestructibleCost float64 `yaml:"destructible_cost"` // cost multiplier of a destructible cell
}

// SightConfig defines projectile sampling.
type SightConfig struct {
	BulletStepFraction float64 `yaml:"bullet_step_fraction"` // step as a fraction of tile size
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// DefaultMazeConfig returns the hard-coded defaults.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			TileSize:     maze.DefaultTileSize,
			CornerRadius: maze.DefaultCornerRadius,
			WallInset:    maze.DefaultWallInset,
			WallHealth:   maze.DefaultWallHealth,
		},
		Generation: GenerationConfig{
			Width:             mazegen.DefaultWidth,
			Height:            mazegen.DefaultHeight,
			Enemies:           mazegen.DefaultEnemyCount,
			DestructibleRatio: mazegen.DefaultDestructibleRatio,
		},
		Pathfinding: PathfindingConfig{
			DestructibleCost: maze.DefaultDestructibleCost,
		},
		Sight: SightConfig{
			BulletStepFraction: maze.DefaultBulletStepFraction,
		},
		Storage: StorageConfig{
			Path: "~/.tankmaze/history.db",
		},
	}
}

// Validate reports every out-of-range value.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Grid.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.tile_size must be positive, got %v", c.Grid.TileSize))
	}
	if c.Grid.CornerRadius < 0 || c.Grid.CornerRadius*2 > c.Grid.TileSize {
		errs = append(errs, fmt.Errorf("grid.corner_radius must be in [0, tile_size/2], got %v", c.Grid.CornerRadius))
	}
	if c.Grid.WallInset < 0 || c.Grid.WallInset*2 >= c.Grid.TileSize {
		errs = append(errs, fmt.Errorf("grid.wall_inset must be in [0, tile_size/2), got %v", c.Grid.WallInset))
	}
	if c.Grid.WallHealth <= 0 {
		errs = append(errs, fmt.Errorf("grid.wall_health must be positive, got %v", c.Grid.WallHealth))
	}
	if c.Generation.Width < 0 || c.Generation.Height < 0 {
		errs = append(errs, fmt.Errorf("generation size must not be negative, got %dx%d", c.Generation.Width, c.Generation.Height))
	}
	if c.Generation.Enemies < 0 {
		errs = append(errs, fmt.Errorf("generation.enemies must not be negative, got %d", c.Generation.Enemies))
	}
	if c.Generation.DestructibleRatio < 0 || c.Generation.DestructibleRatio > 1 {
		errs = append(errs, fmt.Errorf("generation.destructible_ratio must be in [0, 1], got %v", c.Generation.DestructibleRatio))
	}
	if c.Pathfinding.DestructibleCost < 1 {
		errs = append(errs, fmt.Errorf("pathfinding.destructible_cost must be at least 1, got %v", c.Pathfinding.DestructibleCost))
	}
	if f := c.Sight.BulletStepFraction; f <= 0 || f > 0.5 {
		errs = append(errs, fmt.Errorf("sight.bullet_step_fraction must be in (0, 0.5], got %v", f))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// MazeOptions converts the grid and sight sections to grid options.
func (c MazeConfig) MazeOptions() maze.Options {
	return maze.Options{
		TileSize:           c.Grid.TileSize,
		CornerRadius:       c.Grid.CornerRadius,
		WallInset:          c.Grid.WallInset,
		WallHealth:         c.Grid.WallHealth,
		BulletStepFraction: c.Sight.BulletStepFraction,
	}
}

// Params converts the generation section to generator inputs.
func (c MazeConfig) Params() mazegen.Params {
	return mazegen.Params{
		Width:             c.Generation.Width,
		Height:            c.Generation.Height,
		EnemyCount:        c.Generation.Enemies,
		DestructibleRatio: c.Generation.DestructibleRatio,
		DualSpawn:         c.Generation.DualSpawn,
		Escape:            c.Generation.Escape,
	}
}
