package solver

import (
	"context"

	"github.com/pathcore/chdr/heuristic"
)

// Params bundles everything an algorithm package needs to run a search.
// DefaultParams fills in every field's default, and the Option functions in
// options.go (applied by Apply) override them; every algorithm package
// re-exports solver.Option rather than defining its own, so knobs such as
// the heap arity and the ESMG* memory bound are set the same way for all.
type Params struct {
	Maze  Maze
	Start uint64
	End   uint64

	// Heuristic estimates the remaining cost from a node to End. Required
	// by A*-family solvers, ignored by BFS/DFS/Dijkstra/Flood-Fill.
	Heuristic heuristic.Func

	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// OnVisit is called when a node is popped from the frontier and
	// accepted as the next node to expand. An error return aborts the
	// search and is propagated to the caller.
	OnVisit func(i uint64) error
	// OnEnqueue is called when a node is pushed onto the frontier.
	OnEnqueue func(i uint64)
	// OnExit is called once, after the search loop ends with a found or
	// not-found result, before the solver returns. It is not called when the
	// search is cancelled through Ctx, aborted by an OnVisit error, or
	// answered by Validate without entering the loop.
	OnExit func(found bool)

	// Arity is the D-ary heap branching factor used by heap-backed
	// solvers; clamped to [container.MinArity, container.MaxArity].
	Arity int

	// MemoryLimit bounds the number of live frontier nodes kept by
	// bounded-memory solvers (ESMG*). Zero is a valid, if degenerate,
	// limit: it is never treated as "unset" by Validate or Solve, only
	// DefaultParams substitutes a usable default.
	MemoryLimit uint64
}

// DefaultParams returns Params wired to m with start/end left at zero,
// context.Background, no-op hooks, the default heap arity, and a
// MemoryLimit generous enough for most mazes (m.Count()/4, floored at 64).
// Callers override Start, End, and Heuristic as needed.
func DefaultParams(m Maze) Params {
	limit := m.Count() / 4
	if limit < 64 {
		limit = 64
	}

	return Params{
		Maze:        m,
		Heuristic:   heuristic.Manhattan,
		Ctx:         context.Background(),
		OnVisit:     func(uint64) error { return nil },
		OnEnqueue:   func(uint64) {},
		OnExit:      func(bool) {},
		Arity:       2,
		MemoryLimit: limit,
	}
}
