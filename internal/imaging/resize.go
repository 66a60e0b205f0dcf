package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// FitToGrid resizes an image so the requested dimension equals the piece
// count, deriving the other dimension from the aspect ratio (minimum 1).
//
// Exactly one of width and height must be positive. Downscaling uses a
// Lanczos filter so each output pixel blends the photo region the piece
// will cover.
func FitToGrid(img image.Image, width, height int) (image.Image, error) {
	if (width > 0) == (height > 0) {
		return nil, fmt.Errorf("exactly one of width (%d) and height (%d) must be set", width, height)
	}

	srcW, srcH := Dimensions(img)
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("image has zero dimension (%dx%d)", srcW, srcH)
	}

	if width > 0 {
		height = (width*srcH + srcW/2) / srcW
		if height < 1 {
			height = 1
		}
	} else {
		width = (height*srcW + srcH/2) / srcH
		if width < 1 {
			width = 1
		}
	}

	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// Upscale resamples an image to the given dimensions with nearest-neighbor
// interpolation, so every mosaic cell becomes a crisp block of identical
// pixels instead of being smoothed away.
func Upscale(img image.Image, width, height int) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid upscale target %dx%d", width, height)
	}
	return transform.Resize(img, width, height, transform.NearestNeighbor), nil
}
