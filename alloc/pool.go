package alloc

// Pool layers a free list on top of arena-style doubling blocks: Alloc pops
// a previously Freed slot if one is available, otherwise bumps the newest
// block. Like Arena, every address handed out remains valid until the Pool
// itself is discarded.
type Pool[T any] struct {
	arena *Arena[T]
	free  []*T
}

// NewPool returns an empty Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{arena: NewArena[T]()}
}

// Alloc returns a zero-valued *T, reusing a freed slot when one exists.
func (p *Pool[T]) Alloc() *T {
	if n := len(p.free); n > 0 {
		slot := p.free[n-1]
		p.free = p.free[:n-1]
		*slot = *new(T)

		return slot
	}

	return p.arena.Alloc()
}

// Free returns a slot to the pool's free list for reuse by a later Alloc.
// The caller must not dereference slot again after Free without a fresh
// Alloc handing it back out.
func (p *Pool[T]) Free(slot *T) {
	p.free = append(p.free, slot)
}

// Release rebuilds the free list, as if every slot allocated so far had
// just been Freed. Existing pointers remain valid addresses; only the
// bookkeeping of what is "in use" is reset.
func (p *Pool[T]) Release() {
	p.free = p.free[:0]
	for i := range p.arena.blocks {
		block := p.arena.blocks[i]
		for j := range block {
			p.free = append(p.free, &block[j])
		}
	}
}

// Reset drops all blocks and the free list, returning the Pool to its
// initial empty state. Previously issued pointers are no longer valid.
func (p *Pool[T]) Reset() {
	p.arena = NewArena[T]()
	p.free = nil
}
