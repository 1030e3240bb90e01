package esmgstar_test

import (
	"testing"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/esmgstar"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/solver"
)

func TestSolveReachesGoal(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{5, 5}, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{4, 4})

	path, err := esmgstar.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) == 0 || !coord.Equal(path[len(path)-1], coord.Coord{4, 4}) {
		t.Fatalf("path = %v; want it to end at {4 4}", path)
	}
}

func TestSolveWithTightMemoryLimit(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{6, 6}, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{5, 5})

	path, err := esmgstar.Solve(m, start, end, solver.WithMemoryLimit(8))
	if err != nil {
		t.Fatal(err)
	}
	if len(path) == 0 || !coord.Equal(path[len(path)-1], coord.Coord{5, 5}) {
		t.Fatalf("bounded-memory search should still reach the goal; path=%v", path)
	}
}
