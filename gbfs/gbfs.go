// Package gbfs provides Greedy Best-First Search over a solver.Maze: like
// B*, it orders the frontier by heuristic estimate alone, but always
// expands the single best-looking node rather than weighing accumulated
// cost at all. Fast, but not guaranteed optimal or even loop-free without
// the visited-set bookkeeping this implementation already applies.
package gbfs

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs Greedy Best-First Search from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.RunPriorityFirst(p, func(g, h int64) int64 { return h }, true)
}
