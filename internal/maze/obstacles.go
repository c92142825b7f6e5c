package maze

import (
	"github.com/vovakirdan/tank-maze/internal/core"
)

// DestroyResult describes the effect of one hit on a cell.
// Damage and forced destruction produce the same shape.
type DestroyResult struct {
	Hit       bool      // an obstacle absorbed the hit
	Destroyed bool      // the obstacle was destroyed by this call
	Attribute Attribute // reward of the destroyed obstacle, AttrNone otherwise
	Position  core.Vec2 // world center of the cell
	Row, Col  int
}

// DamageAt applies damage to the cell containing a world point.
func (g *Grid) DamageAt(pos core.Vec2, damage float64) DestroyResult {
	p := g.WorldToGrid(pos)
	return g.damageCell(p, damage, false)
}

// ApplyDamage applies damage to the cell at (row, col). With force set the
// health arithmetic is skipped and a destructible cell is destroyed outright,
// which is how an authoritative remote decision is replayed.
func (g *Grid) ApplyDamage(row, col int, damage float64, force bool) DestroyResult {
	return g.damageCell(GridPos{X: col, Y: row}, damage, force)
}

// BulletHit reports whether a projectile at pos struck an obstacle,
// applying damage to it.
func (g *Grid) BulletHit(pos core.Vec2, damage float64) bool {
	return g.DamageAt(pos, damage).Hit
}

func (g *Grid) damageCell(p GridPos, damage float64, force bool) DestroyResult {
	res := DestroyResult{Row: p.Y, Col: p.X}
	if !g.InBounds(p) {
		return res
	}
	res.Position = g.GridToWorld(p)

	cell := &g.cells[g.index(p)]
	switch cell.Kind {
	case Solid:
		res.Hit = true
		return res
	case Destructible:
		res.Hit = true
	default:
		return res
	}

	if !force {
		if damage > 0 {
			cell.Health -= damage
		}
		if cell.Health > 0 {
			return res
		}
	}

	res.Destroyed = true
	res.Attribute = cell.Attribute
	g.set(p, Cell{Kind: Empty})
	return res
}

// CanPlaceWall reports whether a player obstacle may be placed at pos: the
// cell must be Empty and its center at least one tile from the start, the
// exit and any dual spawn.
func (g *Grid) CanPlaceWall(pos core.Vec2) bool {
	p := g.WorldToGrid(pos)
	if g.KindAt(p) != Empty {
		return false
	}

	center := g.GridToWorld(p)
	ts := g.opts.TileSize
	if center.Dist(g.start) < ts || center.Dist(g.exit) < ts {
		return false
	}
	for i, set := range g.spawnSet {
		if set && center.Dist(g.spawns[i]) < ts {
			return false
		}
	}
	return true
}

// PlaceWall turns the cell at pos into a fresh destructible obstacle with no
// reward. It reports false and leaves the grid untouched when placement is
// not allowed.
func (g *Grid) PlaceWall(pos core.Vec2) bool {
	if !g.CanPlaceWall(pos) {
		return false
	}
	g.set(g.WorldToGrid(pos), newDestructible(AttrNone, g.opts.WallHealth))
	return true
}
