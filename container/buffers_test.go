package container_test

import (
	"testing"

	"github.com/pathcore/chdr/container"
)

func TestStableForwardBufStableAddresses(t *testing.T) {
	buf := container.NewStableForwardBuf[int](4)
	var ptrs []*int
	for i := 0; i < 50; i++ {
		ptrs = append(ptrs, buf.Emplace(i))
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("slot %d: value=%d (address moved across block growth)", i, *p)
		}
	}
	if buf.Len() != 50 {
		t.Errorf("Len() = %d; want 50", buf.Len())
	}
}

func TestRingFIFO(t *testing.T) {
	r := container.NewRing[int](2)
	for i := 0; i < 20; i++ {
		r.Push(i)
	}
	for i := 0; i < 20; i++ {
		if got := r.Pop(); got != i {
			t.Fatalf("Pop() = %d; want %d", got, i)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d; want 0", r.Len())
	}
}

func TestRingWrapAround(t *testing.T) {
	r := container.NewRing[int](4)
	r.Push(1)
	r.Push(2)
	r.Pop()
	r.Push(3)
	r.Push(4)
	r.Push(5) // wraps to slot 0 while head offset > 0, filling capacity 4
	want := []int{2, 3, 4, 5}
	for _, w := range want {
		if got := r.Pop(); got != w {
			t.Fatalf("Pop() = %d; want %d", got, w)
		}
	}
}
