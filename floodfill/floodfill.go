// Package floodfill answers a single yes/no question cheaply: is end
// reachable from start at all. It runs the same unweighted breadth-first
// traversal as package bfs but never reconstructs a path, so it's the
// right tool when only reachability matters.
package floodfill

import "github.com/pathcore/chdr/solver"

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve reports whether end is reachable from start over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) (bool, error) {
	return solver.Reachable(solver.Apply(m, start, end, opts...))
}
