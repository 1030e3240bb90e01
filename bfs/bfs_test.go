package bfs_test

import (
	"testing"

	"github.com/pathcore/chdr/bfs"
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
)

func TestSolveStraightLine(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{5, 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := g.AsMaze(false)
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{4, 0})

	path, err := bfs.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 5 {
		t.Fatalf("path length = %d; want 5", len(path))
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

	path, err := bfs.Solve(m, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Errorf("expected nil path across a wall, got %v", path)
	}
}
