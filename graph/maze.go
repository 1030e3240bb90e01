package graph

import (
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/solver"
)

// asMaze adapts a Graph to solver.Maze, mirroring grid.Grid's AsMaze.
type asMaze struct{ g *Graph }

func (m *asMaze) Count() uint64          { return m.g.Count() }
func (m *asMaze) Contains(i uint64) bool { return m.g.Contains(i) }
func (m *asMaze) IsActive(i uint64) bool { return m.g.IsActive(i) }

// ToCoord returns the node index wrapped as a 1-dimensional coordinate:
// graphs have no natural coordinate space, but heuristics and path
// reconstruction need some Coord representation.
func (m *asMaze) ToCoord(i uint64) (coord.Coord, error) { return coord.Coord{int64(i)}, nil }

// ToIndex is the inverse of ToCoord.
func (m *asMaze) ToIndex(c coord.Coord) (uint64, error) { return uint64(c[0]), nil }

func (m *asMaze) Neighbours(i uint64) []solver.Neighbour {
	edges := m.g.Neighbours(i)
	out := make([]solver.Neighbour, len(edges))
	for j, e := range edges {
		out[j] = solver.Neighbour{To: e.To, Distance: e.Distance}
	}

	return out
}

// AsMaze adapts g to the solver.Maze interface.
func (g *Graph) AsMaze() solver.Maze { return &asMaze{g: g} }
