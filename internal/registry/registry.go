// Package registry provides a global registry of named generation presets.
// Built-in presets are registered in init(); callers may add their own,
// allowing the CLI and the SSH server to discover modes without hard-coded
// switches.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tank-maze/internal/mazegen"
)

// ErrUnknownPreset is returned by Get and Apply for unregistered IDs.
var ErrUnknownPreset = errors.New("registry: unknown preset")

// Preset is a named generation mode.
// Zero Width, Height and EnemyCount keep the caller's values.
type Preset struct {
	ID          string
	Title       string
	Description string

	DualSpawn  bool
	Escape     bool
	Width      int
	Height     int
	EnemyCount int
}

// Apply overlays the preset on generator parameters.
func (p Preset) Apply(params mazegen.Params) mazegen.Params {
	params.DualSpawn = p.DualSpawn
	params.Escape = p.Escape
	if p.Width > 0 {
		params.Width = p.Width
	}
	if p.Height > 0 {
		params.Height = p.Height
	}
	if p.EnemyCount > 0 {
		params.EnemyCount = p.EnemyCount
	}
	return params
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if p.ID == "" {
		panic("registry: preset without ID")
	}
	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// Apply looks up a preset and overlays it on params.
func Apply(id string, params mazegen.Params) (mazegen.Params, error) {
	p, err := Get(id)
	if err != nil {
		return params, err
	}
	return p.Apply(params), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
