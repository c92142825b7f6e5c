package mazegen

import (
	"sort"

	"github.com/vovakirdan/tank-maze/internal/core"
	"github.com/vovakirdan/tank-maze/internal/maze"
)

const (
	exitTopShare      = 0.4 // single spawn: exit drawn from the farthest 40%
	duelExitTopShare  = 0.3 // dual spawn: exit drawn from the farthest 30%
	spawnPairWindow   = 30  // dual spawn: pairs are searched among this many candidates
	minSpawnCandidate = 10  // below this the central region is widened
	minEdgeExits      = 5   // below this far non-edge cells are added
	enemyStartGap     = 5   // minimum distance of an enemy from every start point
	enemyExitGap      = 3   // enemies stay strictly farther than this from the exit
)

// Reward tables, cumulative thresholds over a 1/1000 roll.
const (
	escapeHealShare = 0.30
	duelRewardShare = 0.15
	duelHealShare   = 0.25
)

type ranked struct {
	pos  maze.GridPos
	dist int
}

// sortFarthest orders by distance, farthest first, keeping scan order on ties.
func sortFarthest(cells []ranked) {
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].dist > cells[j].dist })
}

func topCount(n int, share float64) int {
	return core.Max(1, int(float64(n)*share))
}

// placeStartAndExit picks a random start and an exit among the cells
// farthest from it.
func (g *generator) placeStartAndExit() {
	empties := g.emptyCells()
	if len(empties) < 2 {
		g.rep.fallback("too few open cells for start and exit, using fixed corners")
		start := g.fallbackCell(maze.GridPos{X: 1, Y: 1})
		exit := g.fallbackCell(maze.GridPos{X: g.w - 2, Y: g.h - 2}, start)
		g.setStartAndExit(start, exit)
		return
	}

	g.shuffle(empties)
	start := empties[0]

	rest := make([]ranked, 0, len(empties)-1)
	for _, p := range empties[1:] {
		rest = append(rest, ranked{pos: p, dist: p.Manhattan(start)})
	}
	sortFarthest(rest)
	exit := rest[g.rng.Intn(topCount(len(rest), exitTopShare))].pos

	g.setStartAndExit(start, exit)
}

func (g *generator) setStartAndExit(start, exit maze.GridPos) {
	g.rep.Start, g.rep.Exit = start, exit
	g.put(start, maze.SymbolStart)
	g.put(exit, maze.SymbolExit)
}

// placeDualSpawns picks two central spawn points a fair distance apart and an
// exit on the outer region roughly equidistant from both.
func (g *generator) placeDualSpawns() {
	empties := g.emptyCells()
	if len(empties) < 3 {
		g.rep.fallback("too few open cells for dual spawns, using fixed positions")
		s1 := g.fallbackCell(maze.GridPos{X: g.w/2 - 2, Y: g.h / 2})
		s2 := g.fallbackCell(maze.GridPos{X: g.w/2 + 2, Y: g.h / 2}, s1)
		exit := g.fallbackCell(maze.GridPos{X: g.w - 2, Y: g.h - 2}, s1, s2)
		g.setDualSpawns(s1, s2, exit)
		return
	}

	candidates := g.centralCells(empties, g.w/4, g.h/4)
	if len(candidates) < minSpawnCandidate {
		candidates = g.centralCells(empties, g.w/6, g.h/6)
	}
	if len(candidates) < 2 {
		g.rep.fallback("central region too small, spawning anywhere")
		candidates = append([]maze.GridPos(nil), empties...)
	}
	g.shuffle(candidates)

	s1, s2 := g.pickSpawnPair(candidates)
	exit, ok := g.pickDuelExit(empties, s1, s2)
	if !ok {
		g.rep.fallback("no fair exit candidate, using fixed corner")
		exit = g.fallbackCell(maze.GridPos{X: g.w - 2, Y: g.h - 2}, s1, s2)
	}
	g.setDualSpawns(s1, s2, exit)
}

func (g *generator) setDualSpawns(s1, s2, exit maze.GridPos) {
	g.rep.Spawns = [2]maze.GridPos{s1, s2}
	g.rep.Exit = exit
	g.put(exit, maze.SymbolExit)
	g.put(s1, maze.SymbolSpawn1)
	g.put(s2, maze.SymbolSpawn2)
}

// centralCells keeps the cells at least mx/my away from the lattice edges.
func (g *generator) centralCells(cells []maze.GridPos, mx, my int) []maze.GridPos {
	var out []maze.GridPos
	for _, p := range cells {
		if p.X >= mx && p.X < g.w-mx && p.Y >= my && p.Y < g.h-my {
			out = append(out, p)
		}
	}
	return out
}

func (g *generator) pickSpawnPair(candidates []maze.GridPos) (maze.GridPos, maze.GridPos) {
	short := core.Min(g.w, g.h)
	minDist := core.Max(6, short/4)
	maxDist := core.Max(15, short/2)

	n := core.Min(len(candidates), spawnPairWindow)
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := candidates[i].Manhattan(candidates[j])
			if d >= minDist && d <= maxDist {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	if len(pairs) == 0 {
		g.rep.fallback("no spawn pair within distance bounds, using first candidates")
		return candidates[0], candidates[1]
	}
	pair := pairs[g.rng.Intn(len(pairs))]
	return candidates[pair[0]], candidates[pair[1]]
}

// pickDuelExit ranks fair exit cells by their distance to the nearer spawn.
func (g *generator) pickDuelExit(empties []maze.GridPos, s1, s2 maze.GridPos) (maze.GridPos, bool) {
	mx, my := g.w/4, g.h/4
	edge := func(p maze.GridPos) bool {
		return p.X < mx || p.X >= g.w-mx || p.Y < my || p.Y >= g.h-my
	}
	fair := func(p maze.GridPos) (ranked, bool) {
		if p == s1 || p == s2 {
			return ranked{}, false
		}
		d1, d2 := p.Manhattan(s1), p.Manhattan(s2)
		near := core.Min(d1, d2)
		return ranked{pos: p, dist: near}, core.Abs(d1-d2) <= core.Max(3, near/3)
	}

	var exits []ranked
	for _, p := range empties {
		if !edge(p) {
			continue
		}
		if r, ok := fair(p); ok {
			exits = append(exits, r)
		}
	}

	if len(exits) < minEdgeExits {
		far := core.Min(g.w, g.h) / 3
		for _, p := range empties {
			if edge(p) {
				continue
			}
			if r, ok := fair(p); ok && r.dist > far {
				exits = append(exits, r)
			}
		}
	}

	if len(exits) == 0 {
		return maze.GridPos{}, false
	}
	sortFarthest(exits)
	return exits[g.rng.Intn(topCount(len(exits), duelExitTopShare))].pos, true
}

// ensurePath checks that to is reachable from from through non-wall cells and
// otherwise carves a jittered monotone corridor between them.
func (g *generator) ensurePath(from, to maze.GridPos) {
	if g.reachable(from, to) {
		return
	}
	g.rep.fallback("no route from " + from.String() + " to " + to.String() + ", carving one")
	g.rep.CarvedPaths++

	p := from
	for p != to {
		stepX := g.rng.Intn(2) == 0
		switch {
		case stepX && p.X != to.X:
			p.X += sign(to.X - p.X)
		case p.Y != to.Y:
			p.Y += sign(to.Y - p.Y)
		default:
			p.X += sign(to.X - p.X)
		}
		if g.at(p) == maze.SymbolSolid {
			g.put(p, maze.SymbolEmpty)
		}
	}
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

// reachable runs a breadth-first search inside the wall ring where only
// solid walls block.
func (g *generator) reachable(from, to maze.GridPos) bool {
	if from == to {
		return true
	}
	seen := map[maze.GridPos]bool{from: true}
	queue := []maze.GridPos{from}
	steps := [4]maze.GridPos{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			n := p.Add(d.X, d.Y)
			if n == to {
				return true
			}
			if seen[n] || !g.interior(n) || g.at(n) == maze.SymbolSolid {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

// startPoints returns every position players begin at.
func (g *generator) startPoints() []maze.GridPos {
	if g.p.DualSpawn {
		return g.rep.Spawns[:]
	}
	return []maze.GridPos{g.rep.Start}
}

// placeEnemies marks up to EnemyCount open cells away from starts and exit.
func (g *generator) placeEnemies() {
	starts := g.startPoints()
	var candidates []maze.GridPos
	for _, p := range g.emptyCells() {
		if p.Manhattan(g.rep.Exit) <= enemyExitGap {
			continue
		}
		near := false
		for _, s := range starts {
			if p.Manhattan(s) < enemyStartGap {
				near = true
				break
			}
		}
		if !near {
			candidates = append(candidates, p)
		}
	}

	g.shuffle(candidates)
	n := core.Min(g.p.EnemyCount, len(candidates))
	for _, p := range candidates[:n] {
		g.put(p, maze.SymbolEnemy)
	}
	g.rep.Enemies = n
}

// placeDestructibles converts exposed interior walls to destructible
// obstacles and assigns their rewards from the mode table.
func (g *generator) placeDestructibles() {
	var walls []maze.GridPos
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			p := maze.GridPos{X: x, Y: y}
			if g.at(p) != maze.SymbolSolid || !g.exposed(p) {
				continue
			}
			if g.rng.Roll() < g.p.DestructibleRatio {
				walls = append(walls, p)
			}
		}
	}

	for _, p := range walls {
		sym := g.rewardSymbol()
		g.put(p, sym)
		g.rep.Destructibles++
		switch sym {
		case maze.SymbolReward:
			g.rep.Rewards++
		case maze.SymbolHeal:
			g.rep.Heals++
		}
	}
}

// exposed reports whether a wall touches an empty, start or exit cell
// orthogonally. Enemy and spawn markers do not expose a wall.
func (g *generator) exposed(p maze.GridPos) bool {
	for _, n := range []maze.GridPos{p.Add(0, -1), p.Add(1, 0), p.Add(0, 1), p.Add(-1, 0)} {
		if !g.inBounds(n) {
			continue
		}
		switch g.at(n) {
		case maze.SymbolEmpty, maze.SymbolStart, maze.SymbolExit:
			return true
		}
	}
	return false
}

func (g *generator) rewardSymbol() byte {
	switch {
	case g.p.Escape:
		if g.rng.Roll() < escapeHealShare {
			return maze.SymbolHeal
		}
	case g.p.DualSpawn:
		roll := g.rng.Roll()
		if roll < duelRewardShare {
			return maze.SymbolReward
		}
		if roll < duelHealShare {
			return maze.SymbolHeal
		}
	}
	return maze.SymbolDestructible
}
