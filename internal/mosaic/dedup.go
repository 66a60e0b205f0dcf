package mosaic

import "github.com/ironsheep/brick-mosaic/internal/colorspace"

// UniqueColors collects the distinct colors of a pixel grid in row-major
// first-seen order. The order is deterministic for a given grid, which
// keeps batch partitioning (and therefore any failure behavior) stable
// across runs.
func UniqueColors(grid [][]colorspace.RGB) []colorspace.RGB {
	seen := make(map[colorspace.RGB]bool)
	var unique []colorspace.RGB
	for _, row := range grid {
		for _, c := range row {
			if !seen[c] {
				seen[c] = true
				unique = append(unique, c)
			}
		}
	}
	return unique
}
