// Package idastar provides Iterative Deepening A*: repeated depth-first
// probes bounded by f = g + h, combining A*'s optimality (given an
// admissible heuristic) with DFS's linear memory footprint.
package idastar

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs IDA* from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.IterativeDeepening(p, func(g, h int64) int64 { return g + h }, false)
}
