// Package jps provides Jump Point Search over a 2-dimensional grid: the
// classical formulation of the algorithm package gjps generalizes to
// arbitrary dimensionality. Solve rejects grids of any other rank.
package jps

import (
	"errors"
	"fmt"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/gjps"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/solver"
)

// ErrNot2D is returned when Solve is called on a grid whose rank isn't 2.
var ErrNot2D = errors.New("jps: grid must be 2-dimensional")

// Option configures a search; see the With* constructors in package solver.
type Option = solver.Option

// Solve runs Jump Point Search from start to end over g, which must have
// rank 2.
func Solve(g *grid.Grid, start, end uint64, opts ...Option) ([]coord.Coord, error) {
	if len(g.Size()) != 2 {
		return nil, fmt.Errorf("%w: got rank %d", ErrNot2D, len(g.Size()))
	}

	return gjps.Solve(g, start, end, opts...)
}
