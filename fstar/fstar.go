// Package fstar provides Fringe Search: an A*-equivalent algorithm that
// replaces the binary heap with a pair of sorted lists and an iteratively
// widening f-cost threshold, trading heap bookkeeping for cache-friendlier
// sequential scans. It returns the same optimal path as A* when run with
// the same admissible heuristic.
package fstar

import (
	"fmt"

	"github.com/pathcore/chdr/container"
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// fringeNode is allocated from a container.StableForwardBuf rather than
// held by value in the open/next slices: the fringe lists reorder and
// reinsert nodes every round (see insertSorted), which would invalidate a
// plain slice element's address, but parent needs a stable pointer to
// follow back to the root once a goal is found.
type fringeNode struct {
	index  uint64
	g      int64
	f      int64
	parent *fringeNode
}

// Solve runs Fringe Search from start to end over m.
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
	threshold := p.Heuristic(sc, ec)

	buf := container.NewStableForwardBuf[fringeNode](container.DefaultForwardBlockWidth)
	root := buf.Emplace(fringeNode{index: p.Start, g: 0, f: threshold})

	open := []*fringeNode{root}
	best := map[uint64]*fringeNode{p.Start: root}

	var goalNode *fringeNode
	for len(open) > 0 {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		var next []*fringeNode
		nextThreshold := int64(-1)

		for _, cur := range open {
			if best[cur.index] != cur {
				continue // superseded since being queued this round
			}
			if cur.f > threshold {
				next = insertSorted(next, cur)
				if nextThreshold == -1 || cur.f < nextThreshold {
					nextThreshold = cur.f
				}

				continue
			}
			if err := p.OnVisit(cur.index); err != nil {
				return nil, fmt.Errorf("fstar: OnVisit error at %d: %w", cur.index, err)
			}
			if cur.index == p.End {
				goalNode = cur

				break
			}

			for _, n := range m.Neighbours(cur.index) {
				g := cur.g + n.Distance
				if prev, ok := best[n.To]; ok && prev.g <= g {
					continue
				}

				nc, _ := m.ToCoord(n.To)
				f := g + p.Heuristic(nc, ec)
				child := buf.Emplace(fringeNode{index: n.To, g: g, f: f, parent: cur})
				best[n.To] = child
				next = insertSorted(next, child)
				if f > threshold && (nextThreshold == -1 || f < nextThreshold) {
					nextThreshold = f
				}
				p.OnEnqueue(n.To)
			}
		}

		if goalNode != nil {
			break
		}
		if len(next) == 0 {
			break
		}
		if nextThreshold != -1 {
			threshold = nextThreshold
		}
		open = next
	}

	p.OnExit(goalNode != nil)
	if goalNode == nil {
		return nil, nil
	}

	var path []coord.Coord
	for n := goalNode; n != nil; n = n.parent {
		c, err := m.ToCoord(n.index)
		if err != nil {
			return nil, err
		}
		path = append(path, c)
	}

	return solver.ReversePath(path), nil
}

// insertSorted inserts x into a slice kept in ascending-f order (ties
// broken by higher g first, preferring to finish deeper branches), mirroring
// the fringe list's sorted-insertion discipline.
func insertSorted(list []*fringeNode, x *fringeNode) []*fringeNode {
	i := 0
	for ; i < len(list); i++ {
		if less(x, list[i]) {
			break
		}
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = x

	return list
}

func less(a, b *fringeNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.g > b.g
}
