// Package eiddfs is IDDFS enhanced with a per-probe transposition table: a
// node already reached more cheaply earlier in the current depth-bounded
// probe is not re-expanded, cutting down redundant work on mazes with many
// alternate routes between the same two cells.
package eiddfs

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs enhanced IDDFS from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.IterativeDeepening(p, func(g, h int64) int64 { return g }, true)
}
