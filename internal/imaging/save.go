package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SavePNG encodes an image to a PNG file, creating or truncating path.
func SavePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
