// Package graph implements a sparse, integer-indexed weighted graph: the
// traversal surface search algorithms use once a dense grid has been
// contracted down to its junctions, or when the caller's problem is
// naturally graph-shaped to begin with.
package graph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// Sentinel errors for graph mutation and lookup.
var (
	ErrNodeNotFound = errors.New("graph: node not found")
	ErrSelfLoop     = errors.New("graph: self-loop not allowed")
)

// Edge is one directed connection out of a node.
type Edge struct {
	To       uint64
	Distance int64
}

// Graph is a sparse directed weighted graph over uint64 node indices.
// Mutations are protected by a single RWMutex; readers (Neighbours,
// Contains, Count) take the read lock, writers (Add, AddEdge, Remove,
// Prune) take the write lock.
type Graph struct {
	mu    sync.RWMutex
	nodes map[uint64]struct{}
	adj   map[uint64][]Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[uint64]struct{}),
		adj:   make(map[uint64][]Edge),
	}
}

// Add registers node i with no outgoing edges, if not already present.
func (g *Graph) Add(i uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[i]; !ok {
		g.nodes[i] = struct{}{}
		g.adj[i] = nil
	}
}

// AddEdge adds a directed edge from -> to with the given distance, adding
// either endpoint as a node if it is not already registered. Returns
// ErrSelfLoop if from == to.
func (g *Graph) AddEdge(from, to uint64, distance int64) error {
	if from == to {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		g.nodes[from] = struct{}{}
	}
	if _, ok := g.nodes[to]; !ok {
		g.nodes[to] = struct{}{}
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Distance: distance})

	return nil
}

// AddUndirectedEdge adds edges in both directions with the same distance.
func (g *Graph) AddUndirectedEdge(a, b uint64, distance int64) error {
	if err := g.AddEdge(a, b, distance); err != nil {
		return err
	}

	return g.AddEdge(b, a, distance)
}

// Remove deletes node i and every edge referencing it.
func (g *Graph) Remove(i uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[i]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	delete(g.nodes, i)
	delete(g.adj, i)
	for from, edges := range g.adj {
		filtered := edges[:0]
		for _, e := range edges {
			if e.To != i {
				filtered = append(filtered, e)
			}
		}
		g.adj[from] = filtered
	}

	return nil
}

// Count returns the number of registered nodes.
func (g *Graph) Count() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return uint64(len(g.nodes))
}

// Contains reports whether i is a registered node.
func (g *Graph) Contains(i uint64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[i]

	return ok
}

// IsActive reports whether i is a registered node. Graphs have no inactive
// members distinct from absence, unlike grids: registration is activity.
func (g *Graph) IsActive(i uint64) bool { return g.Contains(i) }

// Neighbours returns a copy of node i's outgoing edges.
func (g *Graph) Neighbours(i uint64) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.adj[i]
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// Prune collapses every degree-2 node into a single edge joining its two
// neighbours, repeating until no more nodes qualify. Degree is measured on
// outgoing edges only: a node qualifies when it has exactly two outgoing
// edges to distinct neighbours. Incoming edges are not inspected; only the
// two neighbours' edges to the removed node are redirected, and both new
// edges get the sum of the removed node's two outgoing distances. This is
// the graph-side counterpart of grid.Grid.IsTransitory: running it after
// FromGrid removes corridor cells that carry no branching information. On
// a graph whose edges come in equal-distance pairs (such as FromGrid over a
// uniform-weight grid) it keeps reachability and shortest-path distances.
func (g *Graph) Prune() {
	for {
		victim, a, b, distA, distB, ok := g.findDegreeTwo()
		if !ok {
			return
		}
		g.mu.Lock()
		delete(g.nodes, victim)
		delete(g.adj, victim)
		g.spliceEdge(a, victim, b, distA+distB)
		g.spliceEdge(b, victim, a, distA+distB)
		g.mu.Unlock()
	}
}

func (g *Graph) findDegreeTwo() (victim, a, b uint64, distA, distB int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for n := range g.nodes {
		edges := g.adj[n]
		if len(edges) != 2 || edges[0].To == edges[1].To {
			continue
		}

		return n, edges[0].To, edges[1].To, edges[0].Distance, edges[1].Distance, true
	}

	return 0, 0, 0, 0, 0, false
}

// spliceEdge replaces, within node from's adjacency, any edge pointing at
// removed with a new edge of the given distance pointing at to.
func (g *Graph) spliceEdge(from, removed, to uint64, distance int64) {
	edges := g.adj[from]
	for i, e := range edges {
		if e.To == removed {
			edges[i] = Edge{To: to, Distance: distance}
		}
	}
}
