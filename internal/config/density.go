package config

import "fmt"

// DensityPreset represents a named obstacle and enemy density.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// DensityPresets lists the presets in increasing density.
func DensityPresets() []DensityPreset {
	return []DensityPreset{DensitySparse, DensityNormal, DensityDense}
}

// ParseDensity validates a preset name. An empty name means normal.
func ParseDensity(name string) (DensityPreset, error) {
	switch p := DensityPreset(name); p {
	case "":
		return DensityNormal, nil
	case DensitySparse, DensityNormal, DensityDense:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown density %q (want sparse, normal or dense)", name)
	}
}

// ApplyDensityPreset adjusts the generation section for a density preset.
// Normal keeps the loaded values.
func ApplyDensityPreset(cfg *MazeConfig, preset DensityPreset) {
	switch preset {
	case DensitySparse:
		cfg.Generation.DestructibleRatio = 0.05
		cfg.Generation.Enemies = 2
	case DensityDense:
		cfg.Generation.DestructibleRatio = 0.35
		cfg.Generation.Enemies = 10
	}
}
