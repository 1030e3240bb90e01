package dijkstra_test

import (
	"testing"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/dijkstra"
	"github.com/pathcore/chdr/grid"
)

func TestSolveOptimalAroundCheapSide(t *testing.T) {
	// A 3x2 grid where the bottom row is much more expensive than the top:
	// the optimal path should route across the top row.
	nodes := []grid.Weight{1, 1, 1, 100, 100, 100}
	g, err := grid.New(coord.Coord{3, 2}, nodes)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{2, 0})

	path, err := dijkstra.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range path {
		if c[1] != 0 {
			t.Fatalf("path %v should stay on the cheap row (y=0)", path)
		}
	}
}
