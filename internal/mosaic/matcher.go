package mosaic

import (
	"github.com/ironsheep/brick-mosaic/internal/colorspace"
	"github.com/ironsheep/brick-mosaic/internal/palette"
)

// Closest returns the palette entry with the smallest CIEDE2000 distance
// to the given pixel color.
//
// The scan is linear over the palette in its stable entry order, and ties
// keep the first entry encountered, so repeated calls with the same inputs
// always return the same entry. The only failure mode is an empty palette,
// which the palette builder's contract rules out in normal operation.
func Closest(c colorspace.RGB, pal *palette.Palette) (palette.Entry, error) {
	entries := pal.Entries()
	if len(entries) == 0 {
		return palette.Entry{}, palette.ErrEmptyPalette
	}

	lab := c.ToLab()
	best := entries[0]
	bestDist := colorspace.Distance(lab, best.Lab)
	for _, e := range entries[1:] {
		if d := colorspace.Distance(lab, e.Lab); d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best, nil
}
