package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/brick-mosaic/internal/colorspace"
)

// gradientImage creates an image whose pixel colors vary with position,
// giving many distinct colors for quantization tests.
func gradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 255 / width), uint8(y * 255 / height), uint8((x + y) % 256), 255})
		}
	}
	return img
}

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, gradientImage(20, 10))

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	w, h := Dimensions(img)
	if w != 20 || h != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", w, h)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for undecodable content")
	}
}

func TestFitToGrid(t *testing.T) {
	tests := []struct {
		name           string
		srcW, srcH     int
		width, height  int
		wantW, wantH   int
	}{
		{"width given, landscape", 200, 100, 40, 0, 40, 20},
		{"height given, landscape", 200, 100, 0, 20, 40, 20},
		{"width given, portrait", 100, 300, 10, 0, 10, 30},
		{"extreme aspect clamps to 1", 1000, 10, 8, 0, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FitToGrid(gradientImage(tt.srcW, tt.srcH), tt.width, tt.height)
			if err != nil {
				t.Fatalf("FitToGrid failed: %v", err)
			}
			w, h := Dimensions(out)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitToGrid_RejectsBothOrNeither(t *testing.T) {
	img := gradientImage(10, 10)
	if _, err := FitToGrid(img, 5, 5); err == nil {
		t.Error("FitToGrid should reject both width and height")
	}
	if _, err := FitToGrid(img, 0, 0); err == nil {
		t.Error("FitToGrid should reject neither width nor height")
	}
}

func TestUpscale(t *testing.T) {
	out, err := Upscale(gradientImage(4, 2), 40, 20)
	if err != nil {
		t.Fatalf("Upscale failed: %v", err)
	}
	w, h := Dimensions(out)
	if w != 40 || h != 20 {
		t.Errorf("got %dx%d, want 40x20", w, h)
	}
}

func TestUpscale_NearestNeighborKeepsBlocks(t *testing.T) {
	// A 2x1 image upscaled 10x must contain only the two source colors.
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{200, 0, 0, 255})
	src.Set(1, 0, color.RGBA{0, 200, 0, 255})

	out, err := Upscale(src, 20, 10)
	if err != nil {
		t.Fatalf("Upscale failed: %v", err)
	}
	for _, c := range uniqueGridColors(t, out) {
		if c != (colorspace.RGB{R: 200}) && c != (colorspace.RGB{G: 200}) {
			t.Fatalf("unexpected blended color %v in nearest-neighbor upscale", c)
		}
	}
}

// uniqueGridColors returns the distinct colors of an image via Grid.
func uniqueGridColors(t *testing.T, img image.Image) []colorspace.RGB {
	t.Helper()
	seen := make(map[colorspace.RGB]bool)
	var unique []colorspace.RGB
	for _, row := range Grid(img) {
		for _, c := range row {
			if !seen[c] {
				seen[c] = true
				unique = append(unique, c)
			}
		}
	}
	return unique
}

func TestGridRoundTrip(t *testing.T) {
	src := gradientImage(16, 9)
	grid := Grid(src)

	if len(grid) != 9 || len(grid[0]) != 16 {
		t.Fatalf("grid is %dx%d, want 9 rows x 16 cols", len(grid), len(grid[0]))
	}

	back := FromGrid(grid)
	w, h := Dimensions(back)
	if w != 16 || h != 9 {
		t.Fatalf("reconstructed image is %dx%d, want 16x9", w, h)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			rr, gg, bb, _ := back.At(x, y).RGBA()
			if r != rr || g != gg || b != bb {
				t.Fatalf("pixel (%d,%d) changed in round trip", x, y)
			}
		}
	}
}

func TestQuantize_BoundsDistinctColors(t *testing.T) {
	src := gradientImage(64, 64) // thousands of distinct colors

	for _, maxColors := range []int{4, 16, 64} {
		out := Quantize(src, maxColors)
		if got := len(uniqueGridColors(t, out)); got > maxColors {
			t.Errorf("maxColors=%d: got %d distinct colors", maxColors, got)
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, gradientImage(8, 8)); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("reloading saved image: %v", err)
	}
	if w, h := Dimensions(img); w != 8 || h != 8 {
		t.Errorf("saved image is %dx%d, want 8x8", w, h)
	}
}
