package solver

import (
	"fmt"
	"math"

	"github.com/pathcore/chdr/container"
	"github.com/pathcore/chdr/coord"
)

// IterativeDeepening runs the IDA*-family search: repeated depth-first
// probes bounded by a monotonically increasing cutoff, where bound(g, h)
// defines the quantity being bounded (path cost g for IDDFS, which equals
// depth on unit-cost mazes; g+h for IDA*; h alone for IDB*). Each probe returns either a solution, or the smallest
// bound value it observed exceeding the current cutoff, which becomes next
// round's cutoff. enhanced enables a transposition table that remembers the
// best g-score seen for an index within the current probe, pruning
// re-expansion of a node already reached more cheaply earlier in the same
// probe (the "E" prefix in EIDDFS/EIDA*/EIDB*).
func IterativeDeepening(p Params, bound func(g, h int64) int64, enhanced bool) ([]coord.Coord, error) {
	needsHeuristic := requiresHeuristic(bound)
	trivial, proceed, err := Validate(p, needsHeuristic)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return trivial, nil
	}

	sc, _ := p.Maze.ToCoord(p.Start)
	ec, _ := p.Maze.ToCoord(p.End)
	h0 := int64(0)
	if needsHeuristic {
		h0 = p.Heuristic(sc, ec)
	}

	cutoff := bound(0, h0)

	visiting := container.NewBitSet()
	visiting.Reserve(p.Maze.Count())

	for {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		var seen map[uint64]int64
		if enhanced {
			seen = map[uint64]int64{p.Start: 0}
		}

		visiting.Clear()
		visiting.Add(p.Start)
		solution, next, err := idProbe(p, []uint64{p.Start}, visiting, 0, cutoff, bound, needsHeuristic, seen)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			p.OnExit(true)
			out := make([]coord.Coord, len(solution))
			for i, idx := range solution {
				c, cerr := p.Maze.ToCoord(idx)
				if cerr != nil {
					return nil, cerr
				}
				out[i] = c
			}

			return out, nil
		}
		if next == math.MaxInt64 {
			p.OnExit(false)

			return nil, nil
		}
		cutoff = next
	}
}

// idProbe performs one bounded depth-first probe. path is the sequence of
// indices from start to the current node (read-only at this level);
// visiting is the existence set backing O(1) path-scoped cycle detection,
// shared and cleared across probes by the caller. On success it returns
// the full start-to-end index path; otherwise nil and the smallest bound
// value observed exceeding cutoff (math.MaxInt64 if none).
func idProbe(p Params, path []uint64, visiting *container.BitSet, g int64, cutoff int64, bound func(g, h int64) int64, needsHeuristic bool, seen map[uint64]int64) ([]uint64, int64, error) {
	cur := path[len(path)-1]
	select {
	case <-p.Ctx.Done():
		return nil, 0, p.Ctx.Err()
	default:
	}
	if err := p.OnVisit(cur); err != nil {
		return nil, 0, fmt.Errorf("solver: OnVisit error at %d: %w", cur, err)
	}
	if cur == p.End {
		return path, 0, nil
	}

	next := int64(math.MaxInt64)
	for _, n := range p.Maze.Neighbours(cur) {
		if visiting.Contains(n.To) {
			continue
		}
		ng := g + n.Distance
		if seen != nil {
			if best, ok := seen[n.To]; ok && best <= ng {
				continue
			}
			seen[n.To] = ng
		}

		h := int64(0)
		if needsHeuristic {
			nc, _ := p.Maze.ToCoord(n.To)
			ec, _ := p.Maze.ToCoord(p.End)
			h = p.Heuristic(nc, ec)
		}
		f := bound(ng, h)
		if f > cutoff {
			if f < next {
				next = f
			}

			continue
		}

		p.OnEnqueue(n.To)
		visiting.Add(n.To)
		childPath := append(append([]uint64{}, path...), n.To)
		solution, childNext, err := idProbe(p, childPath, visiting, ng, cutoff, bound, needsHeuristic, seen)
		visiting.Remove(n.To)
		if err != nil {
			return nil, 0, err
		}
		if solution != nil {
			return solution, 0, nil
		}
		if childNext < next {
			next = childNext
		}
	}

	return nil, next, nil
}

// requiresHeuristic reports whether bound ever reads its h argument by
// probing it with two calls that only differ in h; IDDFS's bound ignores h
// entirely (depth-only), so it should not require Heuristic to be set.
func requiresHeuristic(bound func(g, h int64) int64) bool {
	return bound(0, 0) != bound(0, 1)
}
