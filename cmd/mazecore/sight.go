package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/platform/tui"
)

var (
	sightFlags        genFlags
	flagSightFrom     string
	flagSightTo       string
	flagSightNoRender bool
)

var sightCmd = &cobra.Command{
	Use:   "sight",
	Short: "Classify the line between two cells",
	Long: `Report line of sight, the bullet path and the first blocking cell
between two cell centers.

Line of sight walks the cell line and lets a solid wall win over
destructible ones. The bullet path samples the real segment and reports
the first obstacle a projectile would strike, corners included.

Examples:
  mazecore sight --file level.txt --from 1,1 --to 9,1
  mazecore sight --preset duel --seed 42`,
	Run: runSight,
}

func init() {
	addGenerationFlags(sightCmd, &sightFlags, true)
	sightCmd.Flags().StringVar(&flagSightFrom, "from", "", "Start cell col,row")
	sightCmd.Flags().StringVar(&flagSightTo, "to", "", "Target cell col,row")
	sightCmd.Flags().BoolVar(&flagSightNoRender, "no-render", false, "Print only the classification")
	sightCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colours")
}

func runSight(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	src, err := loadMaze(cmd, &sightFlags, cfg, logger)
	exitOnError("loading maze", err)
	g := src.grid

	from, to, err := endpoints(g, flagSightFrom, flagSightTo)
	exitOnError("parsing positions", err)

	start, end := g.GridToWorld(from), g.GridToWorld(to)
	los := g.CheckLineOfSight(start, end)
	bullet := g.CheckBulletPath(start, end)
	blocked := g.FirstBlockedPosition(start, end)

	if !flagSightNoRender {
		lineColor := core.ColorSight
		if bullet != maze.SightClear {
			lineColor = core.ColorEnemy
		}
		printGrid(g, tui.Overlay{
			Line:       g.LineCells(start, end),
			LineColor:  lineColor,
			Anchor:     from,
			ShowAnchor: true,
			Cursor:     to,
			ShowCursor: true,
		})
		fmt.Println()
	}

	fmt.Printf("%-14s %s\n", "Line of sight", los)
	fmt.Printf("%-14s %s\n", "Bullet path", bullet)
	fmt.Printf("%-14s %s\n", "First block", g.WorldToGrid(blocked))
}
