package solver

import "github.com/pathcore/chdr/container"

// Size-class thresholds and matching stack-buffer hints used to pick
// between a linear priority queue (cheap for small frontiers, where the
// O(n) scan beats a heap's constant-factor overhead) and a D-ary heap (for
// anything large enough that O(log n) pops win out).
const (
	SizeClassTiny   = 32
	SizeClassSmall  = 64
	SizeClassMedium = 128
	SizeClassLarge  = 256
)

// InitialBufferSize returns the frontier container's starting capacity for
// a maze of n nodes, scaled to one of four buckets matching the SizeClass*
// thresholds. It is a performance hint; every container grows on demand
// regardless of the estimate.
func InitialBufferSize(n uint64) int {
	switch {
	case n <= SizeClassTiny:
		return 16
	case n <= SizeClassSmall:
		return 32
	case n <= SizeClassMedium:
		return 64
	default:
		return 128
	}
}

// UseLinearQueue reports whether a frontier expected to hold at most n
// live entries should use container.LinearPQ instead of container.Heap.
func UseLinearQueue(n uint64) bool {
	return n <= SizeClassLarge
}

// Frontier is the priority-queue contract RunPriorityFirst and the
// jump-point searches drive their open set through, satisfied by both
// container.Heap and container.LinearPQ.
type Frontier[T any] interface {
	Push(x T)
	Pop() T
	Len() int
}

// NewFrontier returns the priority queue appropriate for a maze of p's
// size: container.LinearPQ at or below SizeClassLarge nodes, where its O(n) scan
// beats a heap's constant-factor bookkeeping, and container.Heap (arity
// clamped to the valid range by container.NewHeap itself) otherwise.
// Capacity is sized via InitialBufferSize against the maze's node count.
func NewFrontier[T any](p Params, less func(a, b T) bool) Frontier[T] {
	n := p.Maze.Count()
	capacity := InitialBufferSize(n)
	if UseLinearQueue(n) {
		return container.NewLinearPQ[T](capacity, less)
	}

	return container.NewHeap[T](p.Arity, capacity, less)
}
