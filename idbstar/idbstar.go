// Package idbstar provides Iterative Deepening B*: repeated depth-first
// probes bounded by heuristic estimate alone (h), the linear-memory
// counterpart to B* the same way IDA* is to A*.
package idbstar

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs IDB* from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.IterativeDeepening(p, func(g, h int64) int64 { return h }, false)
}
