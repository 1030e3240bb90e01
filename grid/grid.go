// Package grid implements the N-dimensional weighted lattice: a regular
// array of cells addressed by coordinate or flat index, with axis-aligned
// and full-diagonal neighbour enumeration and the transitory-cell predicate
// the grid-to-graph contraction in package graph relies on.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/pathcore/chdr/coord"
)

// Weight is the scalar stored per cell. Two sentinel values carry special
// meaning: Wall marks an impassable cell, and Empty marks a cell that was
// never assigned a real weight. Both are inactive; only values strictly
// between them represent a traversable cell.
type Weight int64

// Empty and Wall are the two inactive sentinel weights.
const (
	Empty Weight = math.MinInt64
	Wall  Weight = math.MaxInt64
)

// Active reports whether w denotes a traversable cell.
func (w Weight) Active() bool { return w != Empty && w != Wall }

// Sentinel errors for grid construction.
var (
	// ErrSizeMismatch indicates nodes.len != product(size): a programmer
	// error that the caller should treat as fatal, not recoverable.
	ErrSizeMismatch = errors.New("grid: len(nodes) does not match product(size)")
	// ErrZeroRank indicates an empty size vector.
	ErrZeroRank = errors.New("grid: size must have at least one axis")
)

// Grid is an immutable (after construction), row-major N-dimensional
// lattice of weighted cells.
type Grid struct {
	size  coord.Coord
	count uint64
	nodes []Weight
}

// New constructs a Grid from an explicit size vector and node slice.
// Returns ErrZeroRank for a rank-0 size, ErrSizeMismatch if len(nodes) !=
// product(size): both are programmer-contract violations the caller is
// expected to have prevented, not a runtime condition to retry.
func New(size coord.Coord, nodes []Weight) (*Grid, error) {
	if len(size) == 0 {
		return nil, ErrZeroRank
	}
	count := coord.Product(size)
	if uint64(len(nodes)) != count {
		return nil, fmt.Errorf("%w: len(nodes)=%d, product(size)=%d", ErrSizeMismatch, len(nodes), count)
	}

	return &Grid{size: coord.Clone(size), count: count, nodes: nodes}, nil
}

// NewUniform constructs a Grid of the given size where every cell has the
// same (active) weight.
func NewUniform(size coord.Coord, value Weight) (*Grid, error) {
	count := coord.Product(size)
	nodes := make([]Weight, count)
	for i := range nodes {
		nodes[i] = value
	}

	return New(size, nodes)
}

// NewFromWalls constructs a Grid from a boolean wall mask (true = wall).
// Active cells are given Weight(1).
func NewFromWalls(size coord.Coord, walls []bool) (*Grid, error) {
	nodes := make([]Weight, len(walls))
	for i, wall := range walls {
		if wall {
			nodes[i] = Wall
		} else {
			nodes[i] = 1
		}
	}

	return New(size, nodes)
}

// Size returns the grid's axis extents.
func (g *Grid) Size() coord.Coord { return g.size }

// Count returns the total number of cells (product of Size()).
func (g *Grid) Count() uint64 { return g.count }

// Contains reports whether i is a valid flat index into the grid.
func (g *Grid) Contains(i uint64) bool { return i < g.count }

// At returns the weight stored at flat index i.
func (g *Grid) At(i uint64) Weight { return g.nodes[i] }

// IsActive reports whether the cell at flat index i is traversable.
func (g *Grid) IsActive(i uint64) bool { return g.nodes[i].Active() }

// ToIndex flattens a coordinate into this grid's index space.
func (g *Grid) ToIndex(c coord.Coord) (uint64, error) { return coord.ToIndex(c, g.size) }

// ToCoord expands a flat index into this grid's coordinate space.
func (g *Grid) ToCoord(i uint64) (coord.Coord, error) { return coord.ToND(i, g.size) }

// Neighbour is one entry of a grid cell's fixed-size neighbourhood array.
type Neighbour struct {
	Active bool
	Coord  coord.Coord
}

// Neighbours returns the cell's neighbourhood. With diagonals=false the
// result has 2*K entries: index i<K is the negative-i axis neighbour,
// index K+i the positive-i axis neighbour. With diagonals=true the result
// enumerates all 3^K-1 non-zero {-1,0,+1}^K directions in lexicographic
// order of a base-3 encoding (axis 0 varies fastest).
func (g *Grid) Neighbours(i uint64, diagonals bool) []Neighbour {
	c, err := g.ToCoord(i)
	if err != nil {
		return nil
	}
	if diagonals {
		return g.diagonalNeighbours(c)
	}

	return g.axisNeighbours(c)
}

func (g *Grid) axisNeighbours(c coord.Coord) []Neighbour {
	k := len(c)
	out := make([]Neighbour, 2*k)
	for axis := 0; axis < k; axis++ {
		neg := coord.Clone(c)
		neg[axis]--
		out[axis] = g.neighbourAt(neg)

		pos := coord.Clone(c)
		pos[axis]++
		out[k+axis] = g.neighbourAt(pos)
	}

	return out
}

func (g *Grid) diagonalNeighbours(c coord.Coord) []Neighbour {
	k := len(c)
	total := 1
	for i := 0; i < k; i++ {
		total *= 3
	}
	out := make([]Neighbour, 0, total-1)

	offset := make([]int, k)
	for code := 0; code < total; code++ {
		rem := code
		allZero := true
		for axis := 0; axis < k; axis++ {
			d := rem % 3
			rem /= 3
			offset[axis] = d - 1 // map {0,1,2} -> {-1,0,1}
			if offset[axis] != 0 {
				allZero = false
			}
		}
		if allZero {
			continue
		}
		n := coord.Clone(c)
		for axis := 0; axis < k; axis++ {
			n[axis] += int64(offset[axis])
		}
		out = append(out, g.neighbourAt(n))
	}

	return out
}

// neighbourAt reports whether coordinate n is in-bounds and active; the
// returned Neighbour.Coord is only meaningful when Active is true.
func (g *Grid) neighbourAt(n coord.Coord) Neighbour {
	idx, err := g.ToIndex(n)
	if err != nil {
		return Neighbour{Active: false}
	}

	return Neighbour{Active: g.IsActive(idx), Coord: n}
}

// IsTransitory reports whether the cell at flat index i is active and has
// exactly two active axis neighbours: a corridor step eligible for
// grid-to-graph contraction.
func (g *Grid) IsTransitory(i uint64) bool {
	if !g.IsActive(i) {
		return false
	}
	count := 0
	for _, n := range g.Neighbours(i, false) {
		if n.Active {
			count++
			if count > 2 {
				return false
			}
		}
	}

	return count == 2
}
