package solver

import (
	"fmt"

	"github.com/pathcore/chdr/container"
	"github.com/pathcore/chdr/coord"
)

// entry is one heap slot for RunPriorityFirst: a node index paired with the
// g-score (path cost so far) it was enqueued with. Stale entries (a node
// re-enqueued at a better g-score after the first push) are dropped lazily
// at pop time by comparing against best[index], rather than paying for a
// heap decrease-key.
type entry struct {
	index    uint64
	g        int64
	priority int64
}

// RunPriorityFirst is the shared engine behind every heap-ordered search:
// Dijkstra (priority == g), A* (priority == g+h), B* and Greedy Best-First
// (priority == h). useHeuristic controls whether h is computed at all, so
// Dijkstra never needs p.Heuristic to be set.
func RunPriorityFirst(p Params, priority func(g, h int64) int64, useHeuristic bool) ([]coord.Coord, error) {
	trivial, proceed, err := Validate(p, useHeuristic)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return trivial, nil
	}

	best := map[uint64]int64{p.Start: 0}
	parent := map[uint64]uint64{}

	open := NewFrontier(p, func(a, b entry) bool { return a.priority < b.priority })

	startH := int64(0)
	if useHeuristic {
		sc, _ := p.Maze.ToCoord(p.Start)
		ec, _ := p.Maze.ToCoord(p.End)
		startH = p.Heuristic(sc, ec)
	}
	open.Push(entry{index: p.Start, g: 0, priority: priority(0, startH)})
	p.OnEnqueue(p.Start)

	found := false
	for open.Len() > 0 {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		cur := open.Pop()
		if g, ok := best[cur.index]; ok && cur.g > g {
			continue // stale entry superseded by a cheaper push
		}
		if err := p.OnVisit(cur.index); err != nil {
			return nil, fmt.Errorf("solver: OnVisit error at %d: %w", cur.index, err)
		}
		if cur.index == p.End {
			found = true

			break
		}

		for _, n := range p.Maze.Neighbours(cur.index) {
			g := cur.g + n.Distance
			if prev, ok := best[n.To]; ok && prev <= g {
				continue
			}
			best[n.To] = g
			parent[n.To] = cur.index

			h := int64(0)
			if useHeuristic {
				nc, _ := p.Maze.ToCoord(n.To)
				ec, _ := p.Maze.ToCoord(p.End)
				h = p.Heuristic(nc, ec)
			}
			open.Push(entry{index: n.To, g: g, priority: priority(g, h)})
			p.OnEnqueue(n.To)
		}
	}

	p.OnExit(found)
	if !found {
		return nil, nil
	}

	return BuildPath(p.Maze, parent, p.End)
}

// RunBreadthFirst explores the maze in increasing hop count (edge weights
// ignored), returning the first path found: shortest by edge count, not by
// weighted distance. Used by BFS; Flood-Fill uses Reachable instead.
func RunBreadthFirst(p Params) ([]coord.Coord, error) {
	trivial, proceed, err := Validate(p, false)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return trivial, nil
	}

	visited := map[uint64]bool{p.Start: true}
	parent := map[uint64]uint64{}

	queue := container.NewRing[uint64](InitialBufferSize(p.Maze.Count()))
	queue.Push(p.Start)
	p.OnEnqueue(p.Start)

	found := false
	for queue.Len() > 0 {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		cur := queue.Pop()
		if err := p.OnVisit(cur); err != nil {
			return nil, fmt.Errorf("solver: OnVisit error at %d: %w", cur, err)
		}
		if cur == p.End {
			found = true

			break
		}

		for _, n := range p.Maze.Neighbours(cur) {
			if visited[n.To] {
				continue
			}
			visited[n.To] = true
			parent[n.To] = cur
			queue.Push(n.To)
			p.OnEnqueue(n.To)
		}
	}

	p.OnExit(found)
	if !found {
		return nil, nil
	}

	return BuildPath(p.Maze, parent, p.End)
}

// RunDepthFirst explores the maze via an explicit stack, returning the
// first path found: not guaranteed shortest, matching plain DFS semantics.
// If greedy is non-nil, each node's unvisited neighbours are sorted so the
// one greedy ranks lowest (most promising) is popped next, turning DFS into
// GDFS (Greedy Depth-First Search) without duplicating the traversal loop.
func RunDepthFirst(p Params, greedy func(to uint64) int64) ([]coord.Coord, error) {
	trivial, proceed, err := Validate(p, greedy != nil)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return trivial, nil
	}

	visited := map[uint64]bool{p.Start: true}
	parent := map[uint64]uint64{}

	stack := []uint64{p.Start}
	p.OnEnqueue(p.Start)

	found := false
	for len(stack) > 0 {
		select {
		case <-p.Ctx.Done():
			return nil, p.Ctx.Err()
		default:
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := p.OnVisit(cur); err != nil {
			return nil, fmt.Errorf("solver: OnVisit error at %d: %w", cur, err)
		}
		if cur == p.End {
			found = true

			break
		}

		neighbours := p.Maze.Neighbours(cur)
		unvisited := make([]Neighbour, 0, len(neighbours))
		for _, n := range neighbours {
			if !visited[n.To] {
				unvisited = append(unvisited, n)
			}
		}
		if greedy != nil {
			sortNeighboursByScore(unvisited, greedy)
		}
		// Push in reverse so the most promising (or first-listed) neighbour
		// is the one popped next.
		for i := len(unvisited) - 1; i >= 0; i-- {
			n := unvisited[i]
			if visited[n.To] {
				continue
			}
			visited[n.To] = true
			parent[n.To] = cur
			stack = append(stack, n.To)
			p.OnEnqueue(n.To)
		}
	}

	p.OnExit(found)
	if !found {
		return nil, nil
	}

	return BuildPath(p.Maze, parent, p.End)
}

func sortNeighboursByScore(ns []Neighbour, score func(uint64) int64) {
	for i := 1; i < len(ns); i++ {
		for j := i; j > 0 && score(ns[j].To) < score(ns[j-1].To); j-- {
			ns[j], ns[j-1] = ns[j-1], ns[j]
		}
	}
}

// Reachable runs an unweighted flood fill from p.Start and reports whether
// p.End is reachable at all, without reconstructing a path.
func Reachable(p Params) (bool, error) {
	if p.Maze == nil {
		return false, ErrNilMaze
	}
	if !p.Maze.Contains(p.Start) || !p.Maze.Contains(p.End) {
		return false, fmt.Errorf("%w: start=%d end=%d", ErrOutOfBounds, p.Start, p.End)
	}
	if !p.Maze.IsActive(p.Start) || !p.Maze.IsActive(p.End) {
		return false, fmt.Errorf("%w: start=%d end=%d", ErrInactiveNode, p.Start, p.End)
	}
	if p.Start == p.End {
		return true, nil
	}

	visited := map[uint64]bool{p.Start: true}
	queue := container.NewRing[uint64](InitialBufferSize(p.Maze.Count()))
	queue.Push(p.Start)

	for queue.Len() > 0 {
		cur := queue.Pop()
		p.OnEnqueue(cur)
		if cur == p.End {
			p.OnExit(true)

			return true, nil
		}
		for _, n := range p.Maze.Neighbours(cur) {
			if !visited[n.To] {
				visited[n.To] = true
				queue.Push(n.To)
			}
		}
	}

	p.OnExit(false)

	return false, nil
}
