package cmd

import (
	"github.com/pathcore/chdr/astar"
	"github.com/pathcore/chdr/bfs"
	"github.com/pathcore/chdr/bstar"
	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/dfs"
	"github.com/pathcore/chdr/dijkstra"
	"github.com/pathcore/chdr/eidastar"
	"github.com/pathcore/chdr/eidbstar"
	"github.com/pathcore/chdr/eiddfs"
	"github.com/pathcore/chdr/esmgstar"
	"github.com/pathcore/chdr/floodfill"
	"github.com/pathcore/chdr/fstar"
	"github.com/pathcore/chdr/gbfs"
	"github.com/pathcore/chdr/gdfs"
	"github.com/pathcore/chdr/gjps"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/idastar"
	"github.com/pathcore/chdr/idbstar"
	"github.com/pathcore/chdr/iddfs"
	"github.com/pathcore/chdr/jps"
	"github.com/pathcore/chdr/solver"
)

// solveFunc runs one named algorithm against g and reports the path found
// (nil means unreachable). Flood-fill has no path to report, so it is
// represented as nil when unreachable and as an empty, non-nil path when
// reachable.
type solveFunc func(g *grid.Grid, diag bool, start, end uint64, opts ...solver.Option) ([]coord.Coord, error)

// solverTable mirrors the <solver> enumeration: {astar, bfs, bstar, dfs,
// dijkstra, eidastar, eidbstar, eiddfs, floodfill, fstar, gbfs, gdfs, gjps,
// gstar, idastar, idbstar, iddfs, jps}, plus esmgstar. "gstar" is an alias for bstar kept
// for naming-scheme completeness; see DESIGN.md for the B*/GBFS naming note.
// gjps and jps always search with diagonal jumps regardless of the
// --diagonals flag; that's intrinsic to the algorithm, not a grid setting.
var solverTable = map[string]solveFunc{
	"astar":    func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return astar.Solve(g.AsMaze(diag), s, e, o...) },
	"bfs":      func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return bfs.Solve(g.AsMaze(diag), s, e, o...) },
	"bstar":    func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return bstar.Solve(g.AsMaze(diag), s, e, o...) },
	"gstar":    func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return bstar.Solve(g.AsMaze(diag), s, e, o...) },
	"dfs":      func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return dfs.Solve(g.AsMaze(diag), s, e, o...) },
	"dijkstra": func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return dijkstra.Solve(g.AsMaze(diag), s, e, o...) },
	"eidastar": func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return eidastar.Solve(g.AsMaze(diag), s, e, o...) },
	"eidbstar": func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return eidbstar.Solve(g.AsMaze(diag), s, e, o...) },
	"eiddfs":   func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return eiddfs.Solve(g.AsMaze(diag), s, e, o...) },
	"fstar":    func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return fstar.Solve(g.AsMaze(diag), s, e, o...) },
	"gbfs":     func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return gbfs.Solve(g.AsMaze(diag), s, e, o...) },
	"gdfs":     func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return gdfs.Solve(g.AsMaze(diag), s, e, o...) },
	"gjps":     func(g *grid.Grid, _ bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return gjps.Solve(g, s, e, o...) },
	"jps":      func(g *grid.Grid, _ bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return jps.Solve(g, s, e, o...) },
	"idastar":  func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return idastar.Solve(g.AsMaze(diag), s, e, o...) },
	"idbstar":  func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return idbstar.Solve(g.AsMaze(diag), s, e, o...) },
	"iddfs":    func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return iddfs.Solve(g.AsMaze(diag), s, e, o...) },
	"esmgstar": func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) { return esmgstar.Solve(g.AsMaze(diag), s, e, o...) },
	"floodfill": func(g *grid.Grid, diag bool, s, e uint64, o ...solver.Option) ([]coord.Coord, error) {
		reachable, err := floodfill.Solve(g.AsMaze(diag), s, e, o...)
		if err != nil || !reachable {
			return nil, err
		}

		return []coord.Coord{}, nil // floodfill reports reachability only, not a route
	},
}

// solverNames lists solverTable's keys in the fixed order they're registered
// as subcommands, so help output is stable across runs.
var solverNames = []string{
	"astar", "bfs", "bstar", "dfs", "dijkstra",
	"eidastar", "eidbstar", "eiddfs", "esmgstar", "floodfill",
	"fstar", "gbfs", "gdfs", "gjps", "gstar",
	"idastar", "idbstar", "iddfs", "jps",
}
