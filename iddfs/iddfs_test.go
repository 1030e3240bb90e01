package iddfs_test

import (
	"testing"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/iddfs"
)

func TestSolveShortestHopCount(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{5, 5}, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{4, 4})

	path, err := iddfs.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 9 { // Manhattan distance 8 + start node
		t.Fatalf("path length = %d; want 9 (shortest hop count)", len(path))
	}
}
