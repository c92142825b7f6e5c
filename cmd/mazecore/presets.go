package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-maze/internal/config"
	"github.com/vovakirdan/tank-maze/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List all generation presets",
	Long:  `Shows every registered generation preset and the density presets.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Generation presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %-7s  %s\n", maxIDLen, "ID", "Mode", "Size", "Description")
	fmt.Printf("  %-*s  %-12s  %-7s  %s\n", maxIDLen, "--", "----", "----", "-----------")

	for _, p := range presets {
		params := p.Apply(config.DefaultMazeConfig().Params()).Normalized()
		size := fmt.Sprintf("%dx%d", params.Width, params.Height)
		fmt.Printf("  %-*s  %-12s  %-7s  %s\n", maxIDLen, p.ID, params.Mode(), size, p.Description)
	}

	fmt.Println()
	fmt.Print("Densities:")
	for _, d := range config.DensityPresets() {
		fmt.Printf(" %s", d)
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("Run 'mazecore show --preset <id>' to see a maze.")
}
