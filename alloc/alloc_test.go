package alloc_test

import (
	"errors"
	"testing"

	"github.com/pathcore/chdr/alloc"
)

func TestArenaStableAddresses(t *testing.T) {
	a := alloc.NewArena[int]()
	ptrs := make([]*int, 0, 5000)
	for i := 0; i < 5000; i++ {
		p := a.New(i)
		ptrs = append(ptrs, p)
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("slot %d: value = %d, want %d (address not stable)", i, *p, i)
		}
	}
	if a.Len() != 5000 {
		t.Errorf("Len = %d; want 5000", a.Len())
	}
}

func TestPoolReuse(t *testing.T) {
	p := alloc.NewPool[int]()
	a := p.Alloc()
	*a = 1
	p.Free(a)
	b := p.Alloc()
	if a != b {
		t.Errorf("Pool.Alloc did not reuse freed slot")
	}
	if *b != 0 {
		t.Errorf("reused slot should be zero-valued, got %d", *b)
	}
}

func TestPoolReleaseAndReset(t *testing.T) {
	p := alloc.NewPool[int]()
	var slots []*int
	for i := 0; i < 10; i++ {
		slots = append(slots, p.Alloc())
	}
	p.Release()
	seen := make(map[*int]bool)
	for range slots {
		s := p.Alloc()
		if seen[s] {
			t.Fatalf("Release handed out the same slot twice")
		}
		seen[s] = true
	}

	p.Reset()
	fresh := p.Alloc()
	if seen[fresh] {
		t.Errorf("Reset should discard prior blocks entirely")
	}
}

func TestBumpLIFO(t *testing.T) {
	b := alloc.NewBump[int]()
	p1 := b.Alloc()
	p2 := b.Alloc()

	if err := b.Dealloc(p1); !errors.Is(err, alloc.ErrNotTopOfStack) {
		t.Errorf("Dealloc(p1) out of order: want ErrNotTopOfStack, got %v", err)
	}
	if err := b.Dealloc(p2); err != nil {
		t.Errorf("Dealloc(p2) (top of stack): unexpected error %v", err)
	}
	if err := b.Dealloc(p1); err != nil {
		t.Errorf("Dealloc(p1) now top of stack: unexpected error %v", err)
	}
}
