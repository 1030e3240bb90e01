// Package dfs provides depth-first search over a solver.Maze: a path is
// returned as soon as one is found, with no guarantee of optimality.
package dfs

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs depth-first search from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	return solver.RunDepthFirst(solver.Apply(m, start, end, opts...), nil)
}
