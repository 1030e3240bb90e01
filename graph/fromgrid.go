package graph

import (
	"runtime"
	"sync"

	"github.com/pathcore/chdr/grid"
)

// maxContractionWorkers caps the partition count for FromGrid, following
// the same "cap at 8" shape as a bounded worker pool (with a floor of one
// worker, also used when the grid has fewer cells than CPUs): cell
// scanning is cheap per cell, so there is no benefit past a handful of
// goroutines and real cost to over-partitioning a small grid.
const maxContractionWorkers = 8

// FromGrid contracts a grid into a graph: every active cell becomes a node,
// every pair of adjacent active cells (axis-adjacent, plus diagonal pairs
// when diagonals is true) an edge in each direction weighted by the
// destination cell's Weight. When prune is true, Prune() is run afterwards
// to collapse corridor (transitory) cells down to their junctions.
//
// Cell scanning is partitioned across up to maxContractionWorkers
// goroutines; each worker only ever adds nodes/edges it discovered from its
// own partition, and Graph's internal mutex serializes the actual writes,
// so no additional coordination is needed between workers.
func FromGrid(g *grid.Grid, diagonals, prune bool) *Graph {
	out := New()
	count := g.Count()

	workers := runtime.NumCPU()
	if workers > maxContractionWorkers {
		workers = maxContractionWorkers
	}
	if workers < 1 || uint64(workers) > count {
		workers = 1
	}

	chunk := count / uint64(workers)
	if chunk == 0 {
		chunk = count
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = count
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			contractRange(g, out, lo, hi, diagonals)
		}(lo, hi)
	}
	wg.Wait()

	if prune {
		out.Prune()
	}

	return out
}

func contractRange(g *grid.Grid, out *Graph, lo, hi uint64, diagonals bool) {
	for i := lo; i < hi; i++ {
		if !g.IsActive(i) {
			continue
		}
		out.Add(i)
		for _, n := range g.Neighbours(i, diagonals) {
			if !n.Active {
				continue
			}
			j, err := g.ToIndex(n.Coord)
			if err != nil || j <= i {
				// Skip j<=i so only the lower-index side of each pair adds
				// it, in both directions at once below; AddEdge takes the
				// Graph's lock, so pairs spanning two partitions are safe.
				continue
			}
			_ = out.AddEdge(i, j, int64(g.At(j)))
			_ = out.AddEdge(j, i, int64(g.At(i)))
		}
	}
}
