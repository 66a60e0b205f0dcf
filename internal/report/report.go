package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/brick-mosaic/internal/mosaic"
	"github.com/ironsheep/brick-mosaic/internal/palette"
)

// Row is one line of the usage report: a palette color and how many pieces
// of it the mosaic needs.
type Row struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// Usage summarizes the pieces a mosaic is built from.
type Usage struct {
	TotalPieces    int   `json:"total_pieces"`
	DistinctColors int   `json:"distinct_colors"`
	Rows           []Row `json:"rows"` // sorted by descending count
}

// Build joins the assembled histogram back to palette entries.
//
// Every histogram color came out of the lookup table, which only ever maps
// onto palette RGB values, so a color the palette cannot resolve is an
// internal-consistency defect.
func Build(hist []mosaic.ColorCount, pal *palette.Palette) (*Usage, error) {
	usage := &Usage{
		DistinctColors: len(hist),
		Rows:           make([]Row, 0, len(hist)),
	}
	for _, cc := range hist {
		entry, ok := pal.ByRGB(cc.Color)
		if !ok {
			return nil, fmt.Errorf("histogram color %s has no palette entry", cc.Color.Hex())
		}
		usage.TotalPieces += cc.Count
		usage.Rows = append(usage.Rows, Row{
			Name:  entry.Name,
			Hex:   entry.Hex,
			Count: cc.Count,
		})
	}
	return usage, nil
}

// Write renders the usage report as plain text.
func (u *Usage) Write(w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Mosaic piece usage\n")
	fmt.Fprintf(&buf, "==================\n")
	fmt.Fprintf(&buf, "Total pieces:    %d\n", u.TotalPieces)
	fmt.Fprintf(&buf, "Distinct colors: %d\n", u.DistinctColors)
	fmt.Fprintf(&buf, "\n")

	nameWidth := len("Color")
	for _, row := range u.Rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}
	fmt.Fprintf(&buf, "%-*s  %-6s  %s\n", nameWidth, "Color", "Hex", "Count")
	for _, row := range u.Rows {
		fmt.Fprintf(&buf, "%-*s  %-6s  %d\n", nameWidth, row.Name, row.Hex, row.Count)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile writes the report to path, creating or truncating it.
func (u *Usage) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := u.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
