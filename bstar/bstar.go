// Package bstar provides B*: a best-first search that orders its frontier
// purely by heuristic estimate to the goal (h). Unlike A*, its path is not
// guaranteed shortest; it trades optimality for fewer node expansions when
// the heuristic is informative.
package bstar

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs B* from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.RunPriorityFirst(p, func(g, h int64) int64 { return h }, true)
}
