package imaging

import (
	"image"
	"image/color/palette"

	"github.com/andybons/gogif"
)

// Quantize bounds an image to at most maxColors distinct colors using
// median-cut quantization. The matching stage scales with the number of
// distinct colors, so the grid image is quantized before deduplication
// when it carries more colors than the bound.
func Quantize(img image.Image, maxColors int) image.Image {
	if maxColors < 1 {
		maxColors = 1
	}
	if maxColors > 256 {
		maxColors = 256
	}

	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	quantizer := gogif.MedianCutQuantizer{NumColor: maxColors}
	quantizer.Quantize(paletted, bounds, img, image.Point{})
	return paletted
}
