package solver

import "github.com/pathcore/chdr/coord"

// ReversePath reverses a path built by walking parent pointers from End
// back to Start (the natural order of reconstruction), returning it in
// Start-to-End order.
func ReversePath(path []coord.Coord) []coord.Coord {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// BuildPath walks parent, starting at end and following parent[node] until
// a node with no entry remains (the start node), collecting coordinates via
// m.ToCoord and returning them in Start-to-End order. Returns an error if
// any visited index fails to convert to a coordinate.
func BuildPath(m Maze, parent map[uint64]uint64, end uint64) ([]coord.Coord, error) {
	var path []coord.Coord
	cur := end
	for {
		c, err := m.ToCoord(cur)
		if err != nil {
			return nil, err
		}
		path = append(path, c)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	return ReversePath(path), nil
}
