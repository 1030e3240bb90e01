// Package eidbstar is IDB* enhanced with a per-probe transposition table;
// see package eiddfs for the transposition-table rationale.
package eidbstar

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs enhanced IDB* from start to end over m.
func Solve(m solver.Maze, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	p := solver.Apply(m, start, end, opts...)

	return solver.IterativeDeepening(p, func(g, h int64) int64 { return h }, true)
}
