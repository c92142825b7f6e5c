package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-maze/internal/config"
	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/mazegen"
	"github.com/vovakirdan/tank-maze/internal/registry"
	"github.com/vovakirdan/tank-maze/internal/storage"
)

// genFlags are the generator inputs shared by the maze commands.
type genFlags struct {
	preset  string
	density string
	seed    int64
	width   int
	height  int
	enemies int
	file    string
}

// addGenerationFlags registers the generator flags on cmd.
// withFile adds --file for commands that can read a saved encoding.
func addGenerationFlags(cmd *cobra.Command, g *genFlags, withFile bool) {
	cmd.Flags().StringVar(&g.preset, "preset", "", "Generation preset (see 'mazecore presets')")
	cmd.Flags().StringVar(&g.density, "density", "", "Obstacle density: sparse, normal, dense")
	cmd.Flags().Int64Var(&g.seed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().IntVar(&g.width, "width", 0, "Maze width in cells (rounded up to odd)")
	cmd.Flags().IntVar(&g.height, "height", 0, "Maze height in cells (rounded up to odd)")
	cmd.Flags().IntVar(&g.enemies, "enemies", 0, "Number of enemy spawns")
	if withFile {
		cmd.Flags().StringVar(&g.file, "file", "", "Read the maze encoding from a file instead of generating")
	}
}

// params resolves the generator inputs: config, then density, then preset,
// then explicit flags.
func (g *genFlags) params(cmd *cobra.Command, cfg config.MazeConfig) (mazegen.Params, error) {
	density, err := config.ParseDensity(g.density)
	if err != nil {
		return mazegen.Params{}, err
	}
	config.ApplyDensityPreset(&cfg, density)

	p := cfg.Params()
	if g.preset != "" {
		if p, err = registry.Apply(g.preset, p); err != nil {
			return mazegen.Params{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		p.Width = g.width
	}
	if flags.Changed("height") {
		p.Height = g.height
	}
	if flags.Changed("enemies") {
		p.EnemyCount = g.enemies
	}
	p.Seed = g.seed
	return p, nil
}

// newLogger returns the CLI logger on stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tankmaze",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the maze config and applies the --db override.
func loadConfig() (config.MazeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// openStore opens the history database. Failure is logged and yields nil so
// commands keep working without history.
func openStore(cfg config.MazeConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// mazeSource is a maze ready for querying plus where it came from.
type mazeSource struct {
	grid   *maze.Grid
	rows   []string
	report *mazegen.Report // nil when read from a file
	params mazegen.Params
}

// loadMaze reads --file when given and generates a maze otherwise.
func loadMaze(cmd *cobra.Command, g *genFlags, cfg config.MazeConfig, logger *log.Logger) (mazeSource, error) {
	var src mazeSource

	if g.file != "" {
		rows, err := readEncoding(g.file)
		if err != nil {
			return src, err
		}
		src.rows = rows
		logger.Debug("loaded maze", "file", g.file, "rows", len(rows))
	} else {
		p, err := g.params(cmd, cfg)
		if err != nil {
			return src, err
		}
		rows, rep := mazegen.Generate(p)
		logReport(logger, rep)
		src.rows, src.report, src.params = rows, &rep, p
	}

	grid, err := maze.Decode(src.rows, cfg.MazeOptions())
	if err != nil {
		return src, fmt.Errorf("decode maze: %w", err)
	}
	src.grid = grid
	return src, nil
}

// logReport logs a generator report; fallbacks are warnings.
func logReport(logger *log.Logger, rep mazegen.Report) {
	logger.Debug("maze generated",
		"seed", rep.Seed,
		"size", fmt.Sprintf("%dx%d", rep.Width, rep.Height),
		"enemies", rep.Enemies,
		"destructibles", rep.Destructibles,
		"rewards", rep.Rewards,
		"heals", rep.Heals,
		"carved", rep.CarvedPaths,
	)
	for _, f := range rep.Fallbacks {
		logger.Warn("generator fallback", "detail", f)
	}
}

// readEncoding reads a maze encoding, one row per line.
// Carriage returns and trailing blank lines are dropped.
func readEncoding(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("read maze %s: %w", path, maze.ErrEmptyEncoding)
	}
	return lines, nil
}

var errBadPosition = errors.New("position must be col,row")

// parseGridPos parses "col,row".
func parseGridPos(s string) (maze.GridPos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.GridPos{}, fmt.Errorf("%w, got %q", errBadPosition, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.GridPos{}, fmt.Errorf("%w, got %q", errBadPosition, s)
	}
	return maze.GridPos{X: x, Y: y}, nil
}

// endpoints resolves --from and --to, defaulting to the first start point
// and the exit of the maze.
func endpoints(g *maze.Grid, from, to string) (maze.GridPos, maze.GridPos, error) {
	start := g.WorldToGrid(g.Start())
	if spawn, ok := g.Spawn(1); ok {
		start = g.WorldToGrid(spawn)
	}
	goal := g.WorldToGrid(g.Exit())

	var err error
	if from != "" {
		if start, err = parseGridPos(from); err != nil {
			return start, goal, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if goal, err = parseGridPos(to); err != nil {
			return start, goal, fmt.Errorf("--to: %w", err)
		}
	}
	return start, goal, nil
}

// terminalSize returns the stdout terminal size or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// stdoutIsTerminal reports whether colour output makes sense.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// exitOnError prints err the way every command reports failures and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
