package container_test

import (
	"testing"

	"github.com/pathcore/chdr/container"
)

func testSetIdempotence(t *testing.T, s container.Set) {
	t.Helper()

	s.Add(5)
	if !s.Contains(5) {
		t.Fatalf("Contains(5) = false after Add(5)")
	}
	s.Add(5)
	if !s.Contains(5) {
		t.Fatalf("Add(5) twice should remain present")
	}
	s.Remove(5)
	if s.Contains(5) {
		t.Fatalf("Contains(5) = true after Remove(5)")
	}
	if s.Contains(100) {
		t.Fatalf("Contains(100) = true for never-added, in-bounds-after-growth index")
	}
}

func TestBitSetIdempotence(t *testing.T)  { testSetIdempotence(t, container.NewBitSet()) }
func TestByteSetIdempotence(t *testing.T) { testSetIdempotence(t, container.NewWordSet[uint8]()) }
func TestWordSetIdempotence(t *testing.T) {
	testSetIdempotence(t, container.NewWordSet[uint64]())
}

func TestSetLazyGrowth(t *testing.T) {
	s := container.NewBitSet()
	if s.Size() != 0 {
		t.Fatalf("fresh set should have Size 0")
	}
	s.Add(130)
	if s.Size() < 131 {
		t.Errorf("Add(130) should grow Size to at least 131, got %d", s.Size())
	}
	if s.Contains(129) {
		t.Errorf("never-added bit should not be present after growth")
	}
}

func TestSetPrune(t *testing.T) {
	s := container.NewBitSet()
	s.Add(3)
	s.Add(200)
	s.Remove(200)
	s.Prune()
	if s.Size() != 4 {
		t.Errorf("Prune: Size = %d; want 4 (last present index 3, +1)", s.Size())
	}
	if !s.Contains(3) {
		t.Errorf("Prune must not drop still-present bits")
	}
}

func TestSetClear(t *testing.T) {
	s := container.NewWordSet[uint32]()
	s.Add(1)
	s.Add(2)
	s.Clear()
	if s.Contains(1) || s.Contains(2) {
		t.Errorf("Clear did not remove members")
	}
	if s.Size() != 0 {
		t.Errorf("Clear should reset Size to 0, got %d", s.Size())
	}
}

func TestGrowHint(t *testing.T) {
	got := container.GrowHint(5, 4, 100)
	if got == 0 || got > 100 {
		t.Errorf("GrowHint(5,4,100) = %d; want in (0,100]", got)
	}
	if got := container.GrowHint(500, 40, 100); got != 100 {
		t.Errorf("GrowHint should cap at count: got %d, want 100", got)
	}
}
