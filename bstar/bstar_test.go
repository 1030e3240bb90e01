package bstar_test

import (
	"testing"

	"github.com/pathcore/chdr/bstar"
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
)

func TestSolveReachesGoal(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{4, 4}, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{3, 3})

	path, err := bstar.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) == 0 || !coord.Equal(path[len(path)-1], coord.Coord{3, 3}) {
		t.Fatalf("path = %v; want it to end at {3 3}", path)
	}
}
