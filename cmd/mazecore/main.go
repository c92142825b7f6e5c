// mazecore is the command-line front end of the tank maze spatial engine.
//
// Usage:
//
//	mazecore presets              - List generation presets
//	mazecore generate             - Generate a maze and print its encoding
//	mazecore show                 - Render a maze in the terminal
//	mazecore route                - Find a route between two cells
//	mazecore sight                - Classify the line between two cells
//	mazecore explore              - Explore mazes interactively
//	mazecore serve                - Start SSH server for remote exploring
//	mazecore history              - Show recorded generation runs
//	mazecore verify <run-id>      - Regenerate a run and compare digests
//
// Global flags:
//
//	--config <path>  - Load a custom maze.yaml
//	--db <path>      - Override the history database path
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazecore",
	Short: "Tank Maze - generate, inspect and explore tank battle mazes",
	Long: `Tank Maze is the spatial engine of a top-down tank game: procedural
maze generation, rounded obstacle geometry, circle collision, A* routing,
line of sight and destructible walls.

Available commands:
  presets   - Show all generation presets
  generate  - Generate a maze and print its text encoding
  show      - Render a generated or saved maze
  route     - Route between two cells, optionally through walls
  sight     - Line of sight and bullet path between two cells
  explore   - Interactive explorer
  serve     - Start SSH server for remote exploring
  history   - Recorded generation runs
  verify    - Prove a recorded run regenerates identically

Examples:
  mazecore generate --preset duel --seed 42
  mazecore show --preset solo-escape --seed 7
  mazecore route --file level.txt --from 1,1 --to 19,13 --through-walls
  mazecore explore
  mazecore serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(sightCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(verifyCmd)
}
