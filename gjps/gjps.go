// Package gjps provides the N-dimensional generalization of Jump Point
// Search: an A*-equivalent algorithm for uniform-cost grids that skips
// over straight runs of unobstructed cells, only generating a search node
// at a "jump point" (the goal, a dead end, or a cell with a forced
// neighbour) a shorter route couldn't have reached any other way. It
// produces the same optimal path A* would, with far fewer expansions on
// open grids.
//
// Package jps is the 2-dimensional specialization of this engine.
package gjps

import (
	"fmt"

	"github.com/pathcore/chdr/alloc"
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/heuristic"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// jumpNode is a jump point's search record. Unlike the map-based parent
// chains the other solvers use, nodes here are allocated from a pool so a
// superseded node's slot (one reached again at a strictly better cost) can
// be freed back for reuse, when it has not been expanded yet, instead of
// left for the garbage collector,
// keeping GJPS's live node storage proportional to the open and expanded
// sets rather than to every node ever touched.
type jumpNode struct {
	index    uint64
	g        int64
	parent   *jumpNode
	expanded bool // true once popped and used to generate children
}

type jumpEntry struct {
	node     *jumpNode
	priority int64
}

// Solve runs Jump Point Search from start to end over g. The grid is
// assumed uniform-cost: every traversable cell costs the same to enter, so
// straight-line distance is a valid proxy for path length between jump
// points (a grid with varying per-cell weights will still run, but the
// returned path is no longer guaranteed shortest).
func Solve(g *grid.Grid, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	m := g.AsMaze(true)
	p := solver.Apply(m, start, end, opts...)
	trivial, proceed, err := solver.Validate(p, true)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return trivial, nil
	}

	endCoord, _ := g.ToCoord(end)
	k := len(g.Size())
	dirs := allDirections(k)

	pool := alloc.NewPool[jumpNode]()
	best := map[uint64]*jumpNode{}

	open := solver.NewFrontier(p, func(a, b jumpEntry) bool { return a.priority < b.priority })
	startCoord, _ := g.ToCoord(start)
	startNode := pool.Alloc()
	*startNode = jumpNode{index: start, g: 0}
	best[start] = startNode
	open.Push(jumpEntry{node: startNode, priority: p.Heuristic(startCoord, endCoord)})
	p.OnEnqueue(start)

	var goalNode *jumpNode
	for open.Len() > 0 {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		cur := open.Pop().node
		if best[cur.index] != cur {
			continue // an expanded node superseded after being enqueued (never freed)
		}
		if err := p.OnVisit(cur.index); err != nil {
			return nil, fmt.Errorf("gjps: OnVisit error at %d: %w", cur.index, err)
		}
		if cur.index == end {
			goalNode = cur

			break
		}
		cur.expanded = true

		curCoord, _ := g.ToCoord(cur.index)
		for _, dir := range dirs {
			landing, ok := jump(g, curCoord, dir, end)
			if !ok {
				continue
			}
			lc, _ := g.ToCoord(landing)
			step := heuristic.Euclidean(curCoord, lc)
			newG := cur.g + step
			if prevNode, ok := best[landing]; ok {
				if prevNode.g <= newG {
					continue
				}
				// Only reclaim the slot if nothing can already hold a pointer
				// to it: an expanded node may be some other node's parent.
				if !prevNode.expanded {
					pool.Free(prevNode)
				}
			}
			node := pool.Alloc()
			*node = jumpNode{index: landing, g: newG, parent: cur}
			best[landing] = node
			open.Push(jumpEntry{node: node, priority: newG + p.Heuristic(lc, endCoord)})
			p.OnEnqueue(landing)
		}
	}

	p.OnExit(goalNode != nil)
	if goalNode == nil {
		return nil, nil
	}

	return buildPath(g, goalNode)
}

// buildPath walks a jumpNode's parent chain from end back to start and
// returns it start-to-end.
func buildPath(g *grid.Grid, end *jumpNode) ([]coord.Coord, error) {
	var out []coord.Coord
	for n := end; n != nil; n = n.parent {
		c, err := g.ToCoord(n.index)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return solver.ReversePath(out), nil
}

func isOpen(g *grid.Grid, c coord.Coord) bool {
	idx, err := g.ToIndex(c)

	return err == nil && g.IsActive(idx)
}

func addDir(c coord.Coord, dir []int64) coord.Coord {
	out := coord.Clone(c)
	for i := range out {
		out[i] += dir[i]
	}

	return out
}

func numNonzero(dir []int64) int {
	n := 0
	for _, d := range dir {
		if d != 0 {
			n++
		}
	}

	return n
}

// hasForcedNeighbour generalizes the 2-D JPS forced-neighbour test to K
// dimensions: a neighbour along axis i (perpendicular to dir, i.e.
// dir[i]==0) is forced if it was blocked one step back (before the move
// into at) but is open now, meaning the move into at just opened up a
// route that wasn't reachable by continuing straight.
func hasForcedNeighbour(g *grid.Grid, at coord.Coord, dir []int64) bool {
	prev := addDir(at, negate(dir))
	for i := range dir {
		if dir[i] != 0 {
			continue
		}
		for _, s := range [2]int64{-1, 1} {
			perp := make([]int64, len(dir))
			perp[i] = s
			if !isOpen(g, addDir(prev, perp)) && isOpen(g, addDir(at, perp)) {
				return true
			}
		}
	}

	return false
}

func negate(dir []int64) []int64 {
	out := make([]int64, len(dir))
	for i, d := range dir {
		out[i] = -d
	}

	return out
}

// jump walks from cur in direction dir until it finds a jump point (the
// goal, a forced neighbour, or a cell from which a sub-direction jump
// succeeds), or runs off the grid / into a wall. Returns the jump point's
// flat index.
func jump(g *grid.Grid, cur coord.Coord, dir []int64, goal uint64) (uint64, bool) {
	next := addDir(cur, dir)
	for {
		if !isOpen(g, next) {
			return 0, false
		}
		idx, err := g.ToIndex(next)
		if err != nil {
			return 0, false
		}
		if idx == goal {
			return idx, true
		}
		if hasForcedNeighbour(g, next, dir) {
			return idx, true
		}
		if numNonzero(dir) >= 2 {
			for i, d := range dir {
				if d == 0 {
					continue
				}
				sub := make([]int64, len(dir))
				sub[i] = d
				if _, ok := jump(g, next, sub, goal); ok {
					return idx, true
				}
			}
		}
		next = addDir(next, dir)
	}
}

// allDirections enumerates every non-zero {-1,0,+1}^k vector.
func allDirections(k int) [][]int64 {
	total := 1
	for i := 0; i < k; i++ {
		total *= 3
	}
	out := make([][]int64, 0, total-1)
	for code := 0; code < total; code++ {
		rem := code
		dir := make([]int64, k)
		allZero := true
		for axis := 0; axis < k; axis++ {
			d := rem % 3
			rem /= 3
			dir[axis] = int64(d - 1)
			if dir[axis] != 0 {
				allZero = false
			}
		}
		if allZero {
			continue
		}
		out = append(out, dir)
	}

	return out
}
