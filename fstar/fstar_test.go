package fstar_test

import (
	"testing"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/fstar"
	"github.com/pathcore/chdr/grid"
)

func TestSolveOptimalAroundCheapSide(t *testing.T) {
	nodes := []grid.Weight{1, 1, 1, 100, 100, 100}
	g, err := grid.New(coord.Coord{3, 2}, nodes)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{2, 0})

	path, err := fstar.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range path {
		if c[1] != 0 {
			t.Fatalf("path %v should stay on the cheap row (y=0)", path)
		}
	}
}

func TestSolveUnreachable(t *testing.T) {
	nodes := []grid.Weight{1, 1, grid.Wall, 1, 1}
	g, err := grid.New(coord.Coord{5, 1}, nodes)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{4, 0})

	path, err := fstar.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Errorf("expected nil path across a wall, got %v", path)
	}
}
