// Package iddfs provides Iterative Deepening Depth-First Search: repeated
// depth-bounded DFS probes with an increasing depth cutoff, combining DFS's
// memory footprint with BFS's shortest-path-by-hop-count guarantee.
package iddfs

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs IDDFS from start to end over m. The cutoff is bounded on
// accumulated path cost rather than edge count; over a uniform-cost maze
// (every edge distance 1, as grid.Grid.AsMaze produces for a uniform-weight
// grid) the two coincide and IDDFS behaves identically to the classical
// depth-bounded formulation.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.IterativeDeepening(p, func(g, h int64) int64 { return g }, false)
}
