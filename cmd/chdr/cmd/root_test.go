package cmd

import (
	"testing"

	"github.com/pathcore/chdr/coord"
)

func TestParseSize(t *testing.T) {
	size, err := parseSize([]string{"3", "4"})
	if err != nil {
		t.Fatal(err)
	}
	if !coord.Equal(size, coord.Coord{3, 4}) {
		t.Fatalf("size = %v; want {3 4}", size)
	}
}

func TestParseSizeRejectsNonPositive(t *testing.T) {
	if _, err := parseSize([]string{"0"}); err == nil {
		t.Fatal("expected an error for a zero dimension")
	}
	if _, err := parseSize([]string{"x"}); err == nil {
		t.Fatal("expected an error for a non-numeric dimension")
	}
}

func TestSolverTableCoversSolverNames(t *testing.T) {
	for _, name := range solverNames {
		if _, ok := solverTable[name]; !ok {
			t.Fatalf("solverTable missing entry for %q", name)
		}
	}
}
