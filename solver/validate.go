package solver

import (
	"errors"
	"fmt"

	"github.com/pathcore/chdr/coord"
)

// Sentinel errors for Validate.
var (
	ErrNilMaze       = errors.New("solver: maze is nil")
	ErrOutOfBounds   = errors.New("solver: start or end index out of bounds")
	ErrInactiveNode  = errors.New("solver: start or end node is inactive")
	ErrMissingHeuristic = errors.New("solver: heuristic-driven solver requires a non-nil Heuristic")
)

// Validate runs the shared pre-flight checks every algorithm package
// performs before entering its search loop:
//
//  1. Maze must be non-nil.
//  2. Start and End must be in-bounds (Contains) and active (IsActive).
//  3. If start == end, the search is trivially solved: the caller should
//     return a one-node path without entering the main loop. trivial is
//     non-nil only in this case.
//  4. If needsHeuristic, Heuristic must be non-nil.
//
// proceed is false whenever the caller should return immediately: either
// because of a validation error (err != nil) or because the trivial
// short-circuit applies (err == nil, trivial != nil).
func Validate(p Params, needsHeuristic bool) (trivial []coord.Coord, proceed bool, err error) {
	if p.Maze == nil {
		return nil, false, ErrNilMaze
	}
	if !p.Maze.Contains(p.Start) || !p.Maze.Contains(p.End) {
		return nil, false, fmt.Errorf("%w: start=%d end=%d count=%d", ErrOutOfBounds, p.Start, p.End, p.Maze.Count())
	}
	if !p.Maze.IsActive(p.Start) || !p.Maze.IsActive(p.End) {
		return nil, false, fmt.Errorf("%w: start=%d end=%d", ErrInactiveNode, p.Start, p.End)
	}
	if needsHeuristic && p.Heuristic == nil {
		return nil, false, ErrMissingHeuristic
	}
	if p.Start == p.End {
		c, cerr := p.Maze.ToCoord(p.Start)
		if cerr != nil {
			return nil, false, cerr
		}

		return []coord.Coord{c}, false, nil
	}

	return nil, true, nil
}
