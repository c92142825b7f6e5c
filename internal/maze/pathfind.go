package maze

import (
	"container/heap"

	"github.com/vovakirdan/tank-maze/internal/core"
)

// PathResult is the outcome of a destructible-aware route search.
type PathResult struct {
	Path []core.Vec2 // cell centers from start to target, start excluded

	HasDestructibleWall bool
	FirstWallPos        core.Vec2 // world center of the first destructible on the route
	FirstWallGrid       GridPos
}

// Found reports whether the search produced a route.
func (r PathResult) Found() bool {
	return len(r.Path) > 0
}

// stepCost returns the cost of entering a cell and whether it may be entered.
type stepCost func(CellKind) (float64, bool)

func plainCost(k CellKind) (float64, bool) {
	return 1, k.IsWalkable()
}

func destructibleCost(weight float64) stepCost {
	return func(k CellKind) (float64, bool) {
		switch k {
		case Empty, Exit:
			return 1, true
		case Destructible:
			return weight, true
		default:
			return 0, false
		}
	}
}

type pathNode struct {
	pos    GridPos
	g      float64
	f      float64
	seq    int
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

// Less orders by f, then by insertion so equal-cost searches are repeatable.
func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pathNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

func heuristic(a, b GridPos) float64 {
	return float64(a.Manhattan(b))
}

// astar searches from start to goal with 4-directional moves. The returned
// cells exclude start. The second result is false when goal is unreachable.
func (g *Grid) astar(start, goal GridPos, cost stepCost) ([]GridPos, bool) {
	seq := 0
	open := &pathQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{pos: start, f: heuristic(start, goal)})
	gScore := map[GridPos]float64{start: 0}
	closed := make(map[GridPos]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if _, seen := closed[current.pos]; seen {
			continue
		}
		closed[current.pos] = struct{}{}
		if current.pos == goal {
			return reconstructPath(current), true
		}

		for _, d := range orthogonal {
			next := current.pos.Add(d.X, d.Y)
			if !g.InBounds(next) {
				continue
			}
			if _, seen := closed[next]; seen {
				continue
			}
			step, ok := cost(g.cells[g.index(next)].Kind)
			if !ok {
				continue
			}
			tentativeG := current.g + step
			if prev, ok := gScore[next]; ok && tentativeG >= prev {
				continue
			}
			gScore[next] = tentativeG
			seq++
			heap.Push(open, &pathNode{
				pos:    next,
				g:      tentativeG,
				f:      tentativeG + heuristic(next, goal),
				seq:    seq,
				parent: current,
			})
		}
	}
	return nil, false
}

// reconstructPath walks parents back from end, dropping the start node.
func reconstructPath(end *pathNode) []GridPos {
	path := make([]GridPos, 0)
	for node := end; node != nil && node.parent != nil; node = node.parent {
		path = append(path, node.pos)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (g *Grid) toWorld(cells []GridPos) []core.Vec2 {
	out := make([]core.Vec2, len(cells))
	for i, p := range cells {
		out[i] = g.GridToWorld(p)
	}
	return out
}

// FindGridPath runs the plain search between two cells. Only Empty and Exit
// cells are walkable, and both endpoints must be walkable. A start equal to
// goal yields an empty path with found set.
func (g *Grid) FindGridPath(start, goal GridPos) (path []GridPos, found bool) {
	if !g.KindAt(start).IsWalkable() || !g.KindAt(goal).IsWalkable() {
		return nil, false
	}
	return g.astar(start, goal, plainCost)
}

// FindPath returns the cell centers of the shortest walkable route between
// two world points, excluding the start cell. It is empty when the target
// cannot be reached.
func (g *Grid) FindPath(start, target core.Vec2) []core.Vec2 {
	cells, ok := g.FindGridPath(g.WorldToGrid(start), g.WorldToGrid(target))
	if !ok {
		return nil
	}
	return g.toWorld(cells)
}

// FindPathThroughDestructible searches a route on which destructible obstacles
// are passable at weight times the cost of an open cell. A weight below 1 is
// raised to 1. Solid cells stay impassable; a Solid or out-of-bounds start or
// target yields an empty result. A start on a destructible obstacle is
// accepted, and since the start cell is not part of the route it is never
// reported as the first wall.
func (g *Grid) FindPathThroughDestructible(start, target core.Vec2, weight float64) PathResult {
	if weight < 1 {
		weight = 1
	}
	cost := destructibleCost(weight)

	from, to := g.WorldToGrid(start), g.WorldToGrid(target)
	if _, ok := cost(g.KindAt(from)); !ok {
		return PathResult{}
	}
	if _, ok := cost(g.KindAt(to)); !ok {
		return PathResult{}
	}

	cells, ok := g.astar(from, to, cost)
	if !ok {
		return PathResult{}
	}

	res := PathResult{Path: g.toWorld(cells)}
	for _, p := range cells {
		if g.KindAt(p) == Destructible {
			res.HasDestructibleWall = true
			res.FirstWallPos = g.GridToWorld(p)
			res.FirstWallGrid = p
			break
		}
	}
	return res
}
