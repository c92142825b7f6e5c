// Package maze is the spatial engine of the tank maze: the typed grid, its
// textual encoding, corner rounding, circle collision, A* routing, line of
// sight and the destructible-obstacle lifecycle.
//
// The package is synchronous and performs no locking. A Grid is owned by a
// single game loop; obstacle operations are its only write path.
package maze

// CellKind is the terrain type of one grid cell.
type CellKind uint8

const (
	Empty CellKind = iota
	Solid
	Destructible
	Exit
)

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	case Destructible:
		return "Destructible"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsObstacle reports whether the kind blocks movement and projectiles.
// Exit is a walkable marker and not an obstacle.
func (k CellKind) IsObstacle() bool {
	return k == Solid || k == Destructible
}

// IsWalkable reports whether plain routing may step onto the kind.
func (k CellKind) IsWalkable() bool {
	return k == Empty || k == Exit
}

// Attribute is the reward carried by a destructible obstacle.
// The engine only reports it; callers decide what it is worth.
type Attribute uint8

const (
	AttrNone Attribute = iota
	AttrReward
	AttrHeal
)

// String returns a human-readable name for the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrNone:
		return "None"
	case AttrReward:
		return "Reward"
	case AttrHeal:
		return "Heal"
	default:
		return "Unknown"
	}
}

// Marker records which placement symbol an Empty cell carried in the encoding.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerStart
	MarkerEnemy
	MarkerSpawn1
	MarkerSpawn2
)

// Corner indexes the four corners of a cell, clockwise from top-left.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Corners holds one rounded/square flag per corner, indexed by Corner.
type Corners [4]bool

// Count returns how many corners are rounded.
func (c Corners) Count() int {
	n := 0
	for _, r := range c {
		if r {
			n++
		}
	}
	return n
}

// Cell is one grid position.
type Cell struct {
	Kind      CellKind
	Attribute Attribute // only meaningful for Destructible
	Health    float64   // Destructible only
	MaxHealth float64   // Destructible only
	Corners   Corners   // valid for Solid, Destructible and Exit
	Marker    Marker    // Empty cells only
}

// HealthRatio returns Health/MaxHealth in [0, 1], or 1 for cells without health.
func (c Cell) HealthRatio() float64 {
	if c.Kind != Destructible || c.MaxHealth <= 0 {
		return 1
	}
	r := c.Health / c.MaxHealth
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func newDestructible(attr Attribute, health float64) Cell {
	return Cell{
		Kind:      Destructible,
		Attribute: attr,
		Health:    health,
		MaxHealth: health,
	}
}
