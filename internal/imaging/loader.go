package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
)

// Load reads and decodes an image file.
//
// Supported formats are PNG, JPEG and GIF. The concrete return type depends
// on the source format and color model (e.g. *image.RGBA, *image.YCbCr).
// A missing file or undecodable content is an input error: the caller must
// abort the run before writing any output.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Dimensions returns the width and height of an image in pixels.
func Dimensions(img image.Image) (width, height int) {
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}
