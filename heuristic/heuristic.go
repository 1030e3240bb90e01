// Package heuristic provides the admissible distance estimators used by the
// informed search algorithms (A*, B*, Fringe, JPS, and the iterative-deepening
// family). All heuristics are defined only for coordinates of equal
// dimensionality; callers are expected to pass coordinates drawn from the
// same maze.
package heuristic

import (
	"math"

	"github.com/pathcore/chdr/coord"
)

// Func is the shape expected by solver.Params.Heuristic: an estimate of the
// remaining cost from a to b, expressed in the same units as edge weights.
type Func func(a, b coord.Coord) int64

// Manhattan returns the L1 distance Σ|a[i]-b[i]|. Admissible for 4-connected
// grids with unit edge weights.
func Manhattan(a, b coord.Coord) int64 {
	var total int64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total
}

// SqEuclidean returns Σ(b[i]-a[i])², the squared Euclidean distance. Cheaper
// than Euclidean (no square root) and still monotonic, which is enough for
// relative ordering in a priority queue even though it is not itself an
// admissible estimate of hop count.
func SqEuclidean(a, b coord.Coord) int64 {
	var total int64
	for i := range a {
		d := b[i] - a[i]
		total += d * d
	}

	return total
}

// Euclidean returns the straight-line distance between a and b, truncated to
// an integer so it composes with the integer g/f scores used throughout the
// solver family. Package gjps uses it as the cost of each jump between jump
// points; Manhattan is the default heuristic of every solver.
func Euclidean(a, b coord.Coord) int64 {
	return int64(math.Sqrt(float64(SqEuclidean(a, b))))
}
