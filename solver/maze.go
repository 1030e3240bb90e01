// Package solver defines the Maze abstraction that unifies grid and graph
// traversal for the search algorithms, together with the shared
// pre-validation, capacity-dispatch, and path-reconstruction helpers every
// algorithm package builds on.
package solver

import "github.com/pathcore/chdr/coord"

// Neighbour is one edge out of a Maze node: the flat index it leads to and
// the cost of traversing it.
type Neighbour struct {
	To       uint64
	Distance int64
}

// Maze is the traversal surface every solver operates over. grid.Grid and
// graph.Graph each expose an AsMaze adapter returning one, so a single set
// of algorithm packages works over both a dense N-dimensional lattice and a
// sparse integer-indexed graph without either depending on the other.
type Maze interface {
	// Count returns the number of addressable nodes.
	Count() uint64
	// Contains reports whether i is a valid node index.
	Contains(i uint64) bool
	// IsActive reports whether node i is traversable.
	IsActive(i uint64) bool
	// Neighbours returns the traversable edges leaving node i.
	Neighbours(i uint64) []Neighbour
	// ToCoord expands a flat index into a coordinate, for heuristics and
	// path reconstruction. Graphs without natural coordinates may return
	// a 1-tuple of the index itself.
	ToCoord(i uint64) (coord.Coord, error)
	// ToIndex is the inverse of ToCoord.
	ToIndex(c coord.Coord) (uint64, error)
}
