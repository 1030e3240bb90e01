package heuristic_test

import (
	"testing"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/heuristic"
)

func TestManhattan(t *testing.T) {
	a := coord.Coord{0, 0}
	b := coord.Coord{3, 4}
	if got := heuristic.Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %d; want 7", got)
	}
	// Symmetric.
	if got := heuristic.Manhattan(b, a); got != 7 {
		t.Errorf("Manhattan(b,a) = %d; want 7", got)
	}
}

func TestSqEuclidean(t *testing.T) {
	a := coord.Coord{0, 0}
	b := coord.Coord{3, 4}
	if got := heuristic.SqEuclidean(a, b); got != 25 {
		t.Errorf("SqEuclidean = %d; want 25", got)
	}
}

func TestEuclidean(t *testing.T) {
	a := coord.Coord{0, 0}
	b := coord.Coord{3, 4}
	if got := heuristic.Euclidean(a, b); got != 5 {
		t.Errorf("Euclidean = %d; want 5", got)
	}
}

// TestOverflowSafety exercises coordinates near the low end of the axis
// range whose axis differences are negative, where a naive unsigned
// subtraction before squaring would wrap.
func TestOverflowSafety(t *testing.T) {
	a := coord.Coord{0, 5}
	b := coord.Coord{5, 0}
	if got := heuristic.SqEuclidean(a, b); got != 50 {
		t.Errorf("SqEuclidean = %d; want 50", got)
	}
	if got := heuristic.Manhattan(a, b); got != 10 {
		t.Errorf("Manhattan = %d; want 10", got)
	}
}
