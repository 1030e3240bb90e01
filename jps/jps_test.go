package jps_test

import (
	"errors"
	"testing"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/jps"
)

func TestSolveOpenGrid(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{8, 8}, 1)
	if err != nil {
		t.Fatal(err)
	}
	start, _ := g.ToIndex(coord.Coord{0, 0})
	end, _ := g.ToIndex(coord.Coord{7, 7})

	path, err := jps.Solve(g, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if !coord.Equal(path[0], coord.Coord{0, 0}) || !coord.Equal(path[len(path)-1], coord.Coord{7, 7}) {
		t.Fatalf("path endpoints = %v..%v; want {0 0}..{7 7}", path[0], path[len(path)-1])
	}
}

func TestSolveRejectsNon2D(t *testing.T) {
	g, err := grid.NewUniform(coord.Coord{4, 4, 4}, 1)
	if err != nil {
		t.Fatal(err)
	}
	_, err = jps.Solve(g, 0, 1)
	if !errors.Is(err, jps.ErrNot2D) {
		t.Fatalf("want ErrNot2D, got %v", err)
	}
}
