package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
	"github.com/pathcore/chdr/heuristic"
	"github.com/pathcore/chdr/solver"
)

var rootCmd = &cobra.Command{
	Use:   "chdr",
	Short: "A shortest-path search library demo",
	Long: `chdr builds an empty N-dimensional grid of the requested size and runs
one named search algorithm from its first cell to its last, rendering the
result. It exists to exercise the library end to end; it is not a maze
generator or a persisted application.`,
	SilenceUsage: true,
}

var diagonals bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&diagonals, "diagonals", false, "allow full diagonal neighbours instead of axis-only")

	for _, name := range solverNames {
		rootCmd.AddCommand(newSolverCmd(name))
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newSolverCmd(name string) *cobra.Command {
	fn := solverTable[name]

	return &cobra.Command{
		Use:   name + " <d1> [d2] [d3] [d4]",
		Short: fmt.Sprintf("run %s over an empty grid of the given dimensions", name),
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args)
			if err != nil {
				return err
			}

			g, err := grid.NewUniform(size, 1)
			if err != nil {
				return fmt.Errorf("chdr: %w", err)
			}

			start := uint64(0)
			end := g.Count() - 1

			opts := []solver.Option{solver.WithHeuristic(heuristic.Manhattan)}
			path, err := fn(g, diagonals, start, end, opts...)
			if err != nil {
				return fmt.Errorf("chdr: %s: %w", name, err)
			}

			cmd.Print(render(g, start, end, path))
			if path == nil {
				return fmt.Errorf("chdr: %s: no path found", name)
			}

			return nil
		},
	}
}

func parseSize(args []string) (coord.Coord, error) {
	size := make(coord.Coord, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("chdr: dimension %q must be a positive integer", a)
		}
		size[i] = n
	}

	return size, nil
}
