// Command chdr is a thin demonstration shell over the search-algorithm
// library: it builds an empty maze of the requested dimensions and runs a
// single named solver from start (index 0) to end (the last index), printing
// the resulting path. It is an external collaborator of the library proper,
// not part of its tested surface: no maze generator, persistence, or wire
// protocol lives here.
package main

import (
	"fmt"
	"os"

	"github.com/pathcore/chdr/cmd/chdr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
