package imaging

import (
	"image"

	"github.com/ironsheep/brick-mosaic/internal/colorspace"
)

// Grid extracts an image into a width*height grid of 8-bit RGB triples,
// row-major with (0,0) at the top-left. Alpha is discarded; 16-bit source
// channels are scaled down to 8 bits.
func Grid(img image.Image) [][]colorspace.RGB {
	bounds := img.Bounds()
	grid := make([][]colorspace.RGB, bounds.Dy())
	for y := range grid {
		row := make([]colorspace.RGB, bounds.Dx())
		for x := range row {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = colorspace.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}
		}
		grid[y] = row
	}
	return grid
}

// FromGrid reconstructs an opaque RGBA image from a pixel grid.
func FromGrid(grid [][]colorspace.RGB) *image.RGBA {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range grid {
		for x, c := range row {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
