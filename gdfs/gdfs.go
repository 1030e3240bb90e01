// Package gdfs provides Greedy Depth-First Search over a solver.Maze: a
// depth-first traversal that, at each node, tries the heuristically most
// promising unvisited neighbour first. Like plain DFS, the returned path is
// not guaranteed shortest.
package gdfs

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs Greedy Depth-First Search from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)
	ec, err := m.ToCoord(end)
	if err != nil {
		return nil, err
	}

	score := func(to uint64) int64 {
		tc, cerr := m.ToCoord(to)
		if cerr != nil {
			return 0
		}

		return p.Heuristic(tc, ec)
	}

	return solver.RunDepthFirst(p, score)
}
