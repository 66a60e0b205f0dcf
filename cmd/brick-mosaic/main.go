package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/ironsheep/brick-mosaic/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		width       = pflag.IntP("width", "w", 0, "Mosaic width in pieces (mutually exclusive with --height).")
		height      = pflag.IntP("height", "H", 0, "Mosaic height in pieces (mutually exclusive with --width).")
		output      = pflag.StringP("output", "o", "output", "Directory to write the mosaic images and report into.")
		dataDir     = pflag.StringP("data", "d", "data", "Directory holding the catalog CSV datasets.")
		workers     = pflag.IntP("workers", "j", runtime.NumCPU(), "Number of color matching workers.")
		showVersion = pflag.BoolP("version", "v", false, "Print version information and exit.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: brick-mosaic [options] <photo>\n\n")
		fmt.Fprintf(os.Stderr, "Converts a photo into a brick mosaic using the closest in-production\n")
		fmt.Fprintf(os.Stderr, "flat 1x1 tile and plate colors (CIEDE2000 matching).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n%s", pflag.CommandLine.FlagUsages())
	}
	pflag.Parse()

	if *showVersion {
		fmt.Printf("brick-mosaic %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg := pipeline.Config{
		ImagePath: pflag.Arg(0),
		DataDir:   *dataDir,
		OutputDir: *output,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
		Progress: func(done, total int) {
			log.Printf("matching colors: %d%% (%d/%d batches)", done*100/total, done, total)
		},
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("Mosaic generation failed: %v", err)
	}

	log.Printf("mosaic grid: %dx%d pieces (%d total, %d colors)",
		res.GridWidth, res.GridHeight, res.Usage.TotalPieces, res.Usage.DistinctColors)
	log.Printf("wrote %s", res.MosaicPath)
	log.Printf("wrote %s", res.FullSizePath)
	log.Printf("wrote %s", res.ReportPath)
}
