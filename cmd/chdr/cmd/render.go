package cmd

import (
	"fmt"
	"strings"

	"github.com/pathcore/chdr/coord"
	"github.com/pathcore/chdr/grid"
)

// glyphs for rendering; POSIX terminals get the double-wide block used by
// the original tool, everything else falls back to a CP-437-safe '#'.
func wallGlyph() string {
	if runningOnWindows() {
		return "##"
	}

	return "██"
}

func runningOnWindows() bool {
	return false // chdr is built for POSIX demo hosts only
}

// render draws a 2-D grid with the path overlaid. Ranks other than 2 fall
// back to printing the raw coordinate sequence, since there's no sane glyph
// layout for higher dimensionality.
func render(g *grid.Grid, start, end uint64, path []coord.Coord) string {
	if len(g.Size()) != 2 {
		return renderCoords(path)
	}

	onPath := make(map[[2]int64]bool, len(path))
	for _, c := range path {
		onPath[[2]int64{c[0], c[1]}] = true
	}

	startC, _ := g.ToCoord(start)
	endC, _ := g.ToCoord(end)

	w, h := g.Size()[0], g.Size()[1]
	var b strings.Builder
	for y := int64(0); y < h; y++ {
		for x := int64(0); x < w; x++ {
			c := coord.Coord{x, y}
			idx, _ := g.ToIndex(c)
			switch {
			case coord.Equal(c, startC):
				b.WriteString("SS")
			case coord.Equal(c, endC):
				b.WriteString("EE")
			case !g.IsActive(idx):
				b.WriteString(wallGlyph())
			case onPath[[2]int64{x, y}]:
				b.WriteString("..")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func renderCoords(path []coord.Coord) string {
	if len(path) == 0 {
		return "(no path)\n"
	}

	var b strings.Builder
	for i, c := range path {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%v", []int64(c))
	}
	b.WriteByte('\n')

	return b.String()
}
