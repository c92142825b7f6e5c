// Package mazegen builds tank mazes procedurally: a recursive-backtracker
// skeleton, start/exit or dual-spawn placement, a reachability guard, enemy
// markers and destructible obstacles with mode-dependent rewards.
//
// Output is the textual encoding understood by maze.Decode. The same Params
// always produce the same rows.
package mazegen

import (
	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
)

// Defaults used when a preset or configuration leaves a field unset.
const (
	DefaultWidth             = 21
	DefaultHeight            = 15
	DefaultEnemyCount        = 5
	DefaultDestructibleRatio = 0.15
)

// Params configures one generation run.
type Params struct {
	Width, Height     int     // requested size, rounded up to odd and at least 3
	Seed              int64   // 0 picks a time-derived seed
	EnemyCount        int     // upper bound on enemy markers
	DestructibleRatio float64 // chance for an exposed wall to become destructible, 0..1
	DualSpawn         bool    // two spawn points instead of a single start
	Escape            bool    // escape-mode reward table
}

// DefaultParams returns the parameters of a small single-player maze.
func DefaultParams() Params {
	return Params{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		EnemyCount:        DefaultEnemyCount,
		DestructibleRatio: DefaultDestructibleRatio,
	}
}

// Normalized returns p with dimensions made odd, counts made non-negative and
// the ratio clamped. The seed is left as given.
func (p Params) Normalized() Params {
	p.Width = OddDimension(p.Width)
	p.Height = OddDimension(p.Height)
	p.EnemyCount = core.Max(p.EnemyCount, 0)
	p.DestructibleRatio = core.ClampF(p.DestructibleRatio, 0, 1)
	return p
}

// OddDimension rounds n up to the nearest odd value of at least 3.
func OddDimension(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// Mode names the attribute table selected by the spawn and escape flags.
func (p Params) Mode() string {
	switch {
	case p.DualSpawn && p.Escape:
		return "duel-escape"
	case p.DualSpawn:
		return "duel"
	case p.Escape:
		return "solo-escape"
	default:
		return "solo"
	}
}

// Report describes what a generation run produced.
type Report struct {
	Seed          int64 // seed actually used
	Width, Height int   // final odd dimensions

	Start  maze.GridPos    // single-spawn start, zero in dual mode
	Exit   maze.GridPos    // exit cell in every mode
	Spawns [2]maze.GridPos // dual-spawn positions, zero in single mode

	Enemies       int
	Destructibles int
	Rewards       int
	Heals         int
	CarvedPaths   int // reachability repairs

	// Fallbacks lists every degraded decision, for the caller to log.
	Fallbacks []string
}

func (r *Report) fallback(msg string) {
	r.Fallbacks = append(r.Fallbacks, msg)
}
