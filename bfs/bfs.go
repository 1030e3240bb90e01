// Package bfs provides breadth-first search over a solver.Maze, returning
// the shortest path by edge count (not weighted distance).
package bfs

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs breadth-first search from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	return solver.RunBreadthFirst(solver.Apply(m, start, end, opts...))
}
