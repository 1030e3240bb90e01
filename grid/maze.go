package grid

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// asMaze adapts a Grid to solver.Maze. Defined unexported and returned via
// AsMaze so package solver never needs to import package grid: grid imports
// solver, not the other way around.
type asMaze struct {
	g         *Grid
	diagonals bool
}

func (m *asMaze) Count() uint64         { return m.g.Count() }
func (m *asMaze) Contains(i uint64) bool { return m.g.Contains(i) }
func (m *asMaze) IsActive(i uint64) bool { return m.g.IsActive(i) }

func (m *asMaze) ToCoord(i uint64) (coord.Coord, error) { return m.g.ToCoord(i) }
func (m *asMaze) ToIndex(c coord.Coord) (uint64, error) { return m.g.ToIndex(c) }

// Neighbours reports the active neighbours of node i, with Distance equal
// to the weight of the destination cell: the cost model is "pay to enter",
// matching the grid's per-cell Weight semantics.
func (m *asMaze) Neighbours(i uint64) []solver.Neighbour {
	raw := m.g.Neighbours(i, m.diagonals)
	out := make([]solver.Neighbour, 0, len(raw))
	for _, n := range raw {
		if !n.Active {
			continue
		}
		idx, err := m.g.ToIndex(n.Coord)
		if err != nil {
			continue
		}
		out = append(out, solver.Neighbour{To: idx, Distance: int64(m.g.At(idx))})
	}

	return out
}

// AsMaze adapts g to the solver.Maze interface. diagonals selects between
// axis-only (2K-connected) and full-diagonal (3^K-1-connected) movement.
func (g *Grid) AsMaze(diagonals bool) solver.Maze {
	return &asMaze{g: g, diagonals: diagonals}
}
