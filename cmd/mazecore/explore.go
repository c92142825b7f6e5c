package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-maze/internal/config"
	"github.com/vovakirdan/tank-maze/internal/platform/tui"
)

var (
	exploreFlags   genFlags
	flagFireDamage float64
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore mazes interactively",
	Long: `Open the interactive explorer.

Without --preset a menu lists the presets and the run history. With a
preset the explorer opens directly on a generated maze.

Controls:
  Arrows/hjkl  - Move the cursor
  Space        - Mark the cursor as route and sight start
  P / Shift+P  - Route to the cursor / route through walls
  V            - Line of sight and bullet path to the cursor
  F            - Shoot the wall under the cursor
  W            - Place a wall
  X            - Restore the generated maze
  N            - Generate a new maze
  ?            - Full help
  Esc/B        - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  mazecore explore
  mazecore explore --preset duel-escape --seed 9`,
	Run: runExplore,
}

func init() {
	addGenerationFlags(exploreCmd, &exploreFlags, false)
	exploreCmd.Flags().Float64Var(&flagFireDamage, "damage", tui.DefaultFireDamage, "Damage of one shot")
	exploreCmd.Flags().Float64Var(&flagTankRadius, "radius", 0, "Tank radius of the collision probe (0 = share of the tile size)")
}

// explorerBase builds the explorer settings shared by explore and serve.
func explorerBase(cfg config.MazeConfig) tui.ExplorerConfig {
	return tui.ExplorerConfig{
		Params:           cfg.Params(),
		Options:          cfg.MazeOptions(),
		DestructibleCost: cfg.Pathfinding.DestructibleCost,
		FireDamage:       flagFireDamage,
		TankRadius:       flagTankRadius,
	}
}

func runExplore(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	base := explorerBase(cfg)
	width, height := terminalSize()

	if exploreFlags.preset == "" {
		density, err := config.ParseDensity(exploreFlags.density)
		exitOnError("resolving parameters", err)
		config.ApplyDensityPreset(&cfg, density)
		base.Params = cfg.Params()
		base.Params.Seed = exploreFlags.seed

		exitOnError("running explorer", tui.RunSession(base, store, width, height))
		return
	}

	base.Preset = exploreFlags.preset
	base.Params, err = exploreFlags.params(cmd, cfg)
	exitOnError("resolving parameters", err)

	exitOnError("running explorer", tui.RunExplorer(base, store))
}
