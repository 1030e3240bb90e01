package alloc

import "errors"

// ErrNotTopOfStack is returned by Bump.Dealloc when the given pointer is not
// the most recently issued slot: bump allocation is strictly LIFO, so any
// other deallocation order is a programmer error.
var ErrNotTopOfStack = errors.New("alloc: Dealloc called on a slot that is not the top of the bump stack")

// Bump is a stack allocator: Alloc returns the next slot in the current
// block, and Dealloc only succeeds for the single most recently allocated
// slot (LIFO discipline), mirroring a function's activation record.
type Bump[T any] struct {
	arena *Arena[T]
}

// NewBump returns an empty Bump ready for use.
func NewBump[T any]() *Bump[T] {
	return &Bump[T]{arena: NewArena[T]()}
}

// Alloc returns the next zero-valued slot.
func (b *Bump[T]) Alloc() *T {
	return b.arena.Alloc()
}

// Dealloc releases p, which must be the most recently allocated slot.
// Returns ErrNotTopOfStack otherwise; the caller's fix is to deallocate in
// reverse allocation order.
func (b *Bump[T]) Dealloc(p *T) error {
	blocks := b.arena.blocks
	t := len(blocks) - 1
	for t >= 0 && len(blocks[t]) == 0 {
		t-- // an emptied top block: the live top slot is in an earlier block
	}
	if t < 0 {
		return ErrNotTopOfStack
	}
	top := &blocks[t]
	if p != &(*top)[len(*top)-1] {
		return ErrNotTopOfStack
	}
	*top = (*top)[:len(*top)-1]

	return nil
}
