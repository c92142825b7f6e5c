package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
	"github.com/vovakirdan/tank-maze/internal/platform/tui"
)

var (
	routeFlags        genFlags
	flagRouteFrom     string
	flagRouteTo       string
	flagThroughWalls  bool
	flagWallCost      float64
	flagRouteNoRender bool
	flagTankRadius    float64
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find a route between two cells",
	Long: `Find the shortest 4-connected route between two cells with A*.

By default only open cells are walked. With --through-walls destructible
walls may be crossed at --wall-cost per cell (default from config), and the
first wall on the route is reported as the one to shoot.

Positions are col,row. Without --from the start (or player 1 spawn) is used,
without --to the exit.

With --radius every waypoint is checked for a tank of that radius against the
rounded obstacle geometry, and the first colliding cell is reported.

Examples:
  mazecore route --preset solo --seed 3
  mazecore route --file level.txt --from 1,1 --to 19,13
  mazecore route --through-walls --wall-cost 2
  mazecore route --preset duel --radius 24`,
	Run: runRoute,
}

func init() {
	addGenerationFlags(routeCmd, &routeFlags, true)
	routeCmd.Flags().StringVar(&flagRouteFrom, "from", "", "Start cell col,row")
	routeCmd.Flags().StringVar(&flagRouteTo, "to", "", "Target cell col,row")
	routeCmd.Flags().BoolVar(&flagThroughWalls, "through-walls", false, "Allow crossing destructible walls")
	routeCmd.Flags().Float64Var(&flagWallCost, "wall-cost", 0, "Cost of a destructible cell (0 = config value)")
	routeCmd.Flags().BoolVar(&flagRouteNoRender, "no-render", false, "Print only the route, not the maze")
	routeCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colours")
	routeCmd.Flags().Float64Var(&flagTankRadius, "radius", 0, "Check the route for a tank of this radius (0 = skip)")
}

func runRoute(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	src, err := loadMaze(cmd, &routeFlags, cfg, logger)
	exitOnError("loading maze", err)
	g := src.grid

	from, to, err := endpoints(g, flagRouteFrom, flagRouteTo)
	exitOnError("parsing positions", err)

	start, target := g.GridToWorld(from), g.GridToWorld(to)

	var path []core.Vec2
	var res maze.PathResult
	if flagThroughWalls {
		cost := flagWallCost
		if cost <= 0 {
			cost = cfg.Pathfinding.DestructibleCost
		}
		res = g.FindPathThroughDestructible(start, target, cost)
		path = res.Path
		logger.Debug("route through walls", "from", from, "to", to, "cost", cost)
	} else {
		path = g.FindPath(start, target)
		logger.Debug("route", "from", from, "to", to)
	}

	cells := make([]maze.GridPos, len(path))
	for i, p := range path {
		cells[i] = g.WorldToGrid(p)
	}

	if !flagRouteNoRender {
		printGrid(g, tui.Overlay{
			Path:       cells,
			Anchor:     from,
			ShowAnchor: true,
			Cursor:     to,
			ShowCursor: true,
		})
		fmt.Println()
	}

	if len(path) == 0 {
		if from == to {
			fmt.Printf("Already at %s.\n", to)
			return
		}
		fmt.Printf("No route from %s to %s.\n", from, to)
		return
	}

	fmt.Printf("Route %s -> %s: %d steps\n", from, to, len(path))
	if flagThroughWalls {
		if res.HasDestructibleWall {
			fmt.Printf("First wall at %s (world %.0f,%.0f)\n", res.FirstWallGrid, res.FirstWallPos.X, res.FirstWallPos.Y)
		} else {
			fmt.Println("No walls on the route")
		}
	}

	if flagTankRadius > 0 {
		if hit, ok := firstCollision(g, path, flagTankRadius); ok {
			fmt.Printf("Tank radius %.0f collides at %s\n", flagTankRadius, hit)
		} else {
			fmt.Printf("Tank radius %.0f clears the route\n", flagTankRadius)
		}
	}

	steps := make([]string, len(cells))
	for i, c := range cells {
		steps[i] = c.String()
	}
	fmt.Println(strings.Join(steps, " "))
}

// firstCollision returns the first waypoint where a circle of radius
// overlaps an obstacle.
func firstCollision(g *maze.Grid, path []core.Vec2, radius float64) (maze.GridPos, bool) {
	for _, p := range path {
		if g.CheckCollision(p, radius) {
			return g.WorldToGrid(p), true
		}
	}
	return maze.GridPos{}, false
}
