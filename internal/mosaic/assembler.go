package mosaic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ironsheep/brick-mosaic/internal/colorspace"
)

// ErrMissingColor reports a grid color absent from the lookup table. Given
// the completeness guarantee of MapColors this is an internal defect, not
// a recoverable condition.
var ErrMissingColor = errors.New("color missing from lookup table")

// ColorCount is one histogram bucket: an output color and how many grid
// cells received it.
type ColorCount struct {
	Color colorspace.RGB
	Count int
}

// Assemble substitutes every cell of the pixel grid through the lookup
// table and accumulates the usage histogram in the same pass.
//
// The histogram is sorted by descending count; equal counts keep the order
// in which the colors were first seen in the grid, so the output is stable
// across runs. The counts always sum to the number of grid cells.
func Assemble(grid [][]colorspace.RGB, table map[colorspace.RGB]colorspace.RGB) ([][]colorspace.RGB, []ColorCount, error) {
	out := make([][]colorspace.RGB, len(grid))
	counts := make(map[colorspace.RGB]int)
	var order []colorspace.RGB

	for y, row := range grid {
		outRow := make([]colorspace.RGB, len(row))
		for x, c := range row {
			mapped, ok := table[c]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s at (%d,%d)", ErrMissingColor, c.Hex(), x, y)
			}
			outRow[x] = mapped
			if counts[mapped] == 0 {
				order = append(order, mapped)
			}
			counts[mapped]++
		}
		out[y] = outRow
	}

	hist := make([]ColorCount, 0, len(order))
	for _, c := range order {
		hist = append(hist, ColorCount{Color: c, Count: counts[c]})
	}
	sort.SliceStable(hist, func(i, j int) bool { return hist[i].Count > hist[j].Count })

	return out, hist, nil
}
