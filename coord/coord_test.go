package coord_test

import (
	"errors"
	"testing"

	"github.com/pathcore/chdr/coord"
)

// TestRoundTrip checks ToND(ToIndex(c)) == c for every in-range coordinate,
// and ToIndex(ToND(i)) == i for every in-range index.
func TestRoundTrip(t *testing.T) {
	size := coord.Coord{4, 3, 2}
	count := coord.Product(size)
	if count != 24 {
		t.Fatalf("Product = %d; want 24", count)
	}

	for i := uint64(0); i < count; i++ {
		c, err := coord.ToND(i, size)
		if err != nil {
			t.Fatalf("ToND(%d): %v", i, err)
		}
		back, err := coord.ToIndex(c, size)
		if err != nil {
			t.Fatalf("ToIndex(%v): %v", c, err)
		}
		if back != i {
			t.Errorf("round-trip: i=%d -> c=%v -> %d", i, c, back)
		}
	}
}

func TestToIndexOutOfRange(t *testing.T) {
	size := coord.Coord{2, 2}
	if _, err := coord.ToIndex(coord.Coord{2, 0}, size); !errors.Is(err, coord.ErrOutOfRange) {
		t.Errorf("want ErrOutOfRange, got %v", err)
	}
	if _, err := coord.ToIndex(coord.Coord{-1, 0}, size); !errors.Is(err, coord.ErrOutOfRange) {
		t.Errorf("want ErrOutOfRange, got %v", err)
	}
}

func TestToIndexDimMismatch(t *testing.T) {
	if _, err := coord.ToIndex(coord.Coord{1}, coord.Coord{2, 2}); !errors.Is(err, coord.ErrDimMismatch) {
		t.Errorf("want ErrDimMismatch, got %v", err)
	}
}

func TestToNDOutOfRange(t *testing.T) {
	if _, err := coord.ToND(4, coord.Coord{2, 2}); !errors.Is(err, coord.ErrOutOfRange) {
		t.Errorf("want ErrOutOfRange, got %v", err)
	}
}

func TestEqualAndClone(t *testing.T) {
	a := coord.Coord{1, 2, 3}
	b := coord.Clone(a)
	if !coord.Equal(a, b) {
		t.Errorf("clone should be equal to source")
	}
	b[0] = 9
	if a[0] == 9 {
		t.Errorf("Clone must be independent of source")
	}
	if coord.Equal(a, coord.Coord{1, 2}) {
		t.Errorf("differing dims must not be equal")
	}
}

func TestSign(t *testing.T) {
	cases := map[int64]int{-5: -1, 0: 0, 5: 1}
	for in, want := range cases {
		if got := coord.Sign(in); got != want {
			t.Errorf("Sign(%d) = %d; want %d", in, got, want)
		}
	}
}
