// Package dijkstra provides Dijkstra's algorithm over a solver.Maze: the
// shortest weighted path, expanding nodes in increasing path-cost order.
package dijkstra

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs Dijkstra's algorithm from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.RunPriorityFirst(p, func(g, h int64) int64 { return g }, false)
}
