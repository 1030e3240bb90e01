// Package esmgstar provides ESMG* (Enhanced Simplified Memory-bounded
// Greedy-A*): a tree-search variant of A* that never holds more than
// Params.MemoryLimit live frontier nodes. When the limit would be
// exceeded, the worst (highest f-cost) leaf is culled and its cost is
// remembered on its parent as a "forgotten" f-cost, so if the parent is
// ever re-selected for expansion the search knows not to trust a cost
// lower than what was already explored and abandoned there.
//
// Go's garbage collector retires the manual reference-counted teardown the
// original memory-bounded design used to reclaim culled subtrees
// immediately: a culled node is simply dropped from its parent's children
// slice, and the collector frees it (and any of its own already-collapsed
// descendants) once nothing else reaches it.
package esmgstar

import (
	"fmt"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

type node struct {
	parent   *node
	children []*node
	forgotten map[uint64]int64
	index    uint64
	depth    int
	g        int64
	f        int64
}

// Solve runs ESMG* from start to end over m, never growing the live
// frontier past p.MemoryLimit nodes (set via WithMemoryLimit; see
// solver.DefaultParams for the default). A MemoryLimit of 0 is meaningful,
// not "unset": it disables culling entirely, degenerating ESMG* into plain
// tree-search A*.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)
	trivial, proceed, err := solver.Validate(p, true)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return trivial, nil
	}

	sc, _ := m.ToCoord(p.Start)
	ec, _ := m.ToCoord(p.End)

	root := &node{index: p.Start, depth: 0, g: 0, f: p.Heuristic(sc, ec)}
	open := []*node{root}

	var goalNode *node
	for len(open) > 0 {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		bestIdx := minFIndex(open)
		cur := open[bestIdx]

		if err := p.OnVisit(cur.index); err != nil {
			return nil, fmt.Errorf("esmgstar: OnVisit error at %d: %w", cur.index, err)
		}
		if cur.index == p.End {
			goalNode = cur

			break
		}

		open = removeAt(open, bestIdx)
		children := expand(m, p, cur, ec)
		if len(children) == 0 {
			// Dead end: cur is permanently resolved, nothing to re-add.
			continue
		}
		cur.children = children
		for _, c := range children {
			open = append(open, c)
			p.OnEnqueue(c.index)
		}

		for uint64(len(open)) > p.MemoryLimit && p.MemoryLimit > 0 {
			open = cullWorstLeaf(open)
		}
	}

	p.OnExit(goalNode != nil)
	if goalNode == nil {
		return nil, nil
	}

	return backtrack(m, goalNode)
}

// expand generates cur's viable children: active, unvisited-by-parent
// neighbours that themselves have at least one active neighbour (a true
// dead end is never enqueued, matching the reference algorithm's one-step
// lookahead pruning).
func expand(m solver.Maze, p solver.Params, cur *node, end coord.Coord) []*node {
	neighbours := m.Neighbours(cur.index)
	children := make([]*node, 0, len(neighbours))
	for _, n := range neighbours {
		if cur.parent != nil && cur.parent.index == n.To {
			continue
		}
		if len(m.Neighbours(n.To)) == 0 {
			continue
		}
		nc, _ := m.ToCoord(n.To)
		g := cur.g + n.Distance
		h := p.Heuristic(nc, end)
		f := g + h
		if f < cur.f {
			f = cur.f // f-values are monotonic non-decreasing along a path.
		}
		if forgotten, ok := cur.forgotten[n.To]; ok && forgotten > f {
			f = forgotten
		}
		children = append(children, &node{parent: cur, index: n.To, depth: cur.depth + 1, g: g, f: f})
	}

	return children
}

func minFIndex(open []*node) int {
	best := 0
	for i := 1; i < len(open); i++ {
		if open[i].f < open[best].f || (open[i].f == open[best].f && open[i].g > open[best].g) {
			best = i
		}
	}

	return best
}

func cullWorstLeaf(open []*node) []*node {
	worst := 0
	for i := 1; i < len(open); i++ {
		if open[i].f > open[worst].f {
			worst = i
		}
	}
	victim := open[worst]
	open = removeAt(open, worst)

	parent := victim.parent
	if parent == nil {
		return open // root is the only leaf left; nothing to forget it onto.
	}
	if parent.forgotten == nil {
		parent.forgotten = make(map[uint64]int64)
	}
	parent.forgotten[victim.index] = victim.f
	parent.children = removeChild(parent.children, victim)

	if len(parent.children) == 0 {
		best := int64(-1)
		for _, f := range parent.forgotten {
			if best == -1 || f < best {
				best = f
			}
		}
		if best > parent.f {
			parent.f = best
		}
		open = append(open, parent)
	}

	return open
}

func removeAt(open []*node, i int) []*node {
	open[i] = open[len(open)-1]

	return open[:len(open)-1]
}

func removeChild(children []*node, victim *node) []*node {
	for i, c := range children {
		if c == victim {
			children[i] = children[len(children)-1]

			return children[:len(children)-1]
		}
	}

	return children
}

func backtrack(m solver.Maze, goal *node) ([]coord.Coord, error) {
	var path []coord.Coord
	for n := goal; n != nil; n = n.parent {
		c, err := m.ToCoord(n.index)
		if err != nil {
			return nil, err
		}
		path = append(path, c)
	}

	return solver.ReversePath(path), nil
}
