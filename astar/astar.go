// Package astar provides A* search over a solver.Maze: Dijkstra guided by
// an admissible heuristic estimate of the remaining distance to the goal.
package astar

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs A* from start to end over m, ordering the frontier by
// f = g + h. An admissible (never-overestimating) Heuristic guarantees the
// returned path is shortest; see WithHeuristic to override the default
// (Manhattan).
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.RunPriorityFirst(p, func(g, h int64) int64 { return g + h }, true)
}
