package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/platform/tui"
)

var (
	showFlags genFlags
	flagPlain bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a maze in the terminal",
	Long: `Render a generated or saved maze with rounded obstacle corners.

Walls are drawn two columns per cell. Corners that touch open space are
cut, the same rounding collision uses. Damaged walls fade, reward walls
are gold and heal walls blue.

Examples:
  mazecore show --preset duel --seed 42
  mazecore show --file level.txt
  mazecore show --plain > maze.txt`,
	Run: runShow,
}

func init() {
	addGenerationFlags(showCmd, &showFlags, true)
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colours")
}

func runShow(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	src, err := loadMaze(cmd, &showFlags, cfg, logger)
	exitOnError("loading maze", err)

	if width, _ := terminalSize(); src.grid.Cols()*tui.CellWidth > width {
		logger.Warn("maze is wider than the terminal", "cols", src.grid.Cols(), "terminal", width)
	}

	printGrid(src.grid, tui.Overlay{})
	printStats(src.grid)
	if src.report != nil {
		fmt.Printf("seed %d\n", src.report.Seed)
	}
}

// printGrid prints the grid, coloured when stdout is a terminal.
func printGrid(g *maze.Grid, ov tui.Overlay) {
	if flagPlain || !stdoutIsTerminal() {
		fmt.Println(tui.PlainGrid(g, ov))
		return
	}
	fmt.Println(tui.RenderGrid(g, ov))
}

func printStats(g *maze.Grid) {
	s := g.Stats()
	fmt.Printf("%dx%d  solid %d  destructible %d (reward %d, heal %d)  enemies %d\n",
		g.Cols(), g.Rows(), s.Solid, s.Destructible, s.Reward, s.Heal, s.Enemies)
}
