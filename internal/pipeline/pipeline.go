package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/brick-mosaic/internal/imaging"
	"github.com/ironsheep/brick-mosaic/internal/mosaic"
	"github.com/ironsheep/brick-mosaic/internal/palette"
	"github.com/ironsheep/brick-mosaic/internal/report"
)

// DefaultMaxColors bounds the distinct colors matched per image. The
// quantization collaborator caps out at 256 anyway, and matching cost is
// linear in the distinct color count.
const DefaultMaxColors = 256

// Config holds everything one mosaic run needs.
type Config struct {
	// ImagePath is the source photo.
	ImagePath string

	// DataDir holds the catalog CSV datasets.
	DataDir string

	// OutputDir receives the two mosaic images and the usage report.
	// It is created on demand, but only after all processing succeeded.
	OutputDir string

	// Width and Height are the piece-count target; exactly one must be
	// positive, the other dimension follows the photo's aspect ratio.
	Width  int
	Height int

	// Workers is the matching fan-out; zero means one per CPU.
	Workers int

	// MaxColors bounds distinct colors before matching; zero means 256.
	MaxColors int

	// ReferenceYear anchors the palette recency rules; zero means the
	// current year.
	ReferenceYear int

	// Progress, if non-nil, receives matching progress (observational).
	Progress func(done, total int)
}

// Validate rejects configuration errors before any processing starts.
func (c *Config) Validate() error {
	if c.ImagePath == "" {
		return fmt.Errorf("image path is required")
	}
	if (c.Width > 0) == (c.Height > 0) {
		return fmt.Errorf("exactly one of width and height must be given")
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("piece counts must be positive")
	}
	if _, err := os.Stat(c.ImagePath); err != nil {
		return fmt.Errorf("image file: %w", err)
	}
	if info, err := os.Stat(c.DataDir); err != nil {
		return fmt.Errorf("data directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", c.DataDir)
	}
	return nil
}

// Result describes a finished run.
type Result struct {
	GridWidth  int
	GridHeight int

	MosaicPath   string // mosaic at piece-grid resolution
	FullSizePath string // mosaic upscaled to the photo's dimensions
	ReportPath   string

	Usage *report.Usage
}

// Run executes the whole pipeline: photo in, two mosaic images and a usage
// report out.
//
// All failures are fatal and leave no output files behind; the output
// directory is only touched once matching and assembly have succeeded.
// Cancelling the context aborts the matching fan-out and discards partial
// results.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxColors := cfg.MaxColors
	if maxColors < 1 {
		maxColors = DefaultMaxColors
	}

	img, err := imaging.Load(cfg.ImagePath)
	if err != nil {
		return nil, err
	}
	srcW, srcH := imaging.Dimensions(img)

	builder := palette.NewBuilder(cfg.DataDir)
	if cfg.ReferenceYear != 0 {
		builder.ReferenceYear = cfg.ReferenceYear
	}
	pal, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building palette: %w", err)
	}

	resized, err := imaging.FitToGrid(img, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	grid := imaging.Grid(resized)
	unique := mosaic.UniqueColors(grid)
	if len(unique) > maxColors {
		grid = imaging.Grid(imaging.Quantize(resized, maxColors))
		unique = mosaic.UniqueColors(grid)
	}

	table, err := mosaic.MapColors(ctx, unique, pal, mosaic.MapOptions{
		Workers:  cfg.Workers,
		Progress: cfg.Progress,
	})
	if err != nil {
		return nil, fmt.Errorf("matching colors: %w", err)
	}

	out, hist, err := mosaic.Assemble(grid, table)
	if err != nil {
		return nil, err
	}

	usage, err := report.Build(hist, pal)
	if err != nil {
		return nil, err
	}

	mosaicImg := imaging.FromGrid(out)
	gridW, gridH := imaging.Dimensions(mosaicImg)
	fullImg, err := imaging.Upscale(mosaicImg, srcW, srcH)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	stem := outputStem(cfg.ImagePath)
	res := &Result{
		GridWidth:    gridW,
		GridHeight:   gridH,
		MosaicPath:   filepath.Join(cfg.OutputDir, stem+"_mosaic.png"),
		FullSizePath: filepath.Join(cfg.OutputDir, stem+"_mosaic_full.png"),
		ReportPath:   filepath.Join(cfg.OutputDir, stem+"_report.txt"),
		Usage:        usage,
	}
	if err := imaging.SavePNG(res.MosaicPath, mosaicImg); err != nil {
		return nil, err
	}
	if err := imaging.SavePNG(res.FullSizePath, fullImg); err != nil {
		return nil, err
	}
	if err := usage.WriteFile(res.ReportPath); err != nil {
		return nil, err
	}
	return res, nil
}

func outputStem(imagePath string) string {
	base := filepath.Base(imagePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
