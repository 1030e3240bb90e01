package solver

import (
	"context"

	"github.com/pathcore/chdr/heuristic"
)

// Option configures a Params value produced by DefaultParams. Every
// algorithm package re-exports this type (and the With* constructors
// below) so callers configure any solver the same way, while each package
// still owns its own Solve entry point and any algorithm-specific options.
type Option func(*Params)

// WithContext sets the context checked for cancellation once per node pop.
func WithContext(ctx context.Context) Option {
	return func(p *Params) {
		if ctx != nil {
			p.Ctx = ctx
		}
	}
}

// WithHeuristic overrides the default (Manhattan) heuristic. Ignored by
// solvers that don't use one.
func WithHeuristic(h heuristic.Func) Option {
	return func(p *Params) {
		if h != nil {
			p.Heuristic = h
		}
	}
}

// WithOnVisit registers a callback run when a node is popped and accepted
// for expansion. Returning an error aborts the search.
func WithOnVisit(fn func(i uint64) error) Option {
	return func(p *Params) {
		if fn != nil {
			p.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run when a node is pushed onto the
// frontier.
func WithOnEnqueue(fn func(i uint64)) Option {
	return func(p *Params) {
		if fn != nil {
			p.OnEnqueue = fn
		}
	}
}

// WithOnExit registers a callback run once, after the search loop ends.
func WithOnExit(fn func(found bool)) Option {
	return func(p *Params) {
		if fn != nil {
			p.OnExit = fn
		}
	}
}

// WithArity sets the D-ary heap branching factor for heap-backed solvers.
func WithArity(d int) Option {
	return func(p *Params) { p.Arity = d }
}

// WithMemoryLimit sets the live-frontier node cap used by bounded-memory
// solvers (ESMG*). A limit of 0 is honoured literally, not substituted.
func WithMemoryLimit(n uint64) Option {
	return func(p *Params) { p.MemoryLimit = n }
}

// Apply builds a Params for m/start/end with every opt applied in order.
func Apply(m Maze, start, end uint64, opts ...Option) Params {
	p := DefaultParams(m)
	p.Start, p.End = start, end
	for _, opt := range opts {
		opt(&p)
	}

	return p
}
