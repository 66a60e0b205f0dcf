package palette

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/ironsheep/brick-mosaic/internal/colorspace"
)

// Category names whose parts count as mosaic pieces. Resolved against the
// part_categories dataset by name, not by hard-coded ids, since the ids are
// an implementation detail of the catalog dumps.
var eligibleCategoryNames = []string{"Plates", "Tiles"}

// Defaults for the Builder knobs.
const (
	DefaultMaxAgeYears        = 10
	DefaultRetiredCutoffYears = 1
	DefaultChunkSize          = 25000
)

// Builder derives the matchable palette from the four catalog datasets.
//
// A catalog color is eligible when all of the following hold:
//   - it appears in inventory_parts on a part whose category is Plates or
//     Tiles and whose footprint is 1 x 1 (colors you can actually buy a
//     flat mosaic piece in),
//   - its last production year is within MaxAgeYears of ReferenceYear,
//   - its last production year is within RetiredCutoffYears of
//     ReferenceYear (still in production, i.e. not retired),
//   - it is not transparent.
//
// MaxAgeYears and RetiredCutoffYears are independent knobs. With the
// defaults the retirement cutoff subsumes the age window, but the two
// rules encode different intents and can be tuned separately.
type Builder struct {
	// DataDir is the directory holding the catalog CSV files.
	DataDir string

	// ReferenceYear anchors the recency rules. Zero means the current year.
	ReferenceYear int

	// MaxAgeYears is the freshness window: colors last produced more than
	// this many years before ReferenceYear are excluded.
	MaxAgeYears int

	// RetiredCutoffYears is the retirement rule: colors last produced more
	// than this many years before ReferenceYear count as retired.
	RetiredCutoffYears int

	// ChunkSize bounds how many inventory records are held in memory at
	// once while streaming inventory_parts. It has no effect on the result.
	ChunkSize int
}

// NewBuilder returns a Builder with the default thresholds.
func NewBuilder(dataDir string) *Builder {
	return &Builder{
		DataDir:            dataDir,
		ReferenceYear:      time.Now().Year(),
		MaxAgeYears:        DefaultMaxAgeYears,
		RetiredCutoffYears: DefaultRetiredCutoffYears,
		ChunkSize:          DefaultChunkSize,
	}
}

// Build loads the datasets, applies the eligibility filter and returns the
// palette, ordered by ascending color id.
//
// Any unreadable dataset or an empty result is a fatal data-availability
// error: the caller must abort the whole mosaic run.
func (b *Builder) Build() (*Palette, error) {
	refYear := b.ReferenceYear
	if refYear == 0 {
		refYear = time.Now().Year()
	}
	chunkSize := b.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	categories, err := LoadPartCategories(filepath.Join(b.DataDir, PartCategoriesFile))
	if err != nil {
		return nil, fmt.Errorf("loading part categories: %w", err)
	}
	eligibleCategories := make(map[int]bool)
	for _, c := range categories {
		for _, name := range eligibleCategoryNames {
			if c.Name == name {
				eligibleCategories[c.ID] = true
			}
		}
	}

	parts, err := LoadParts(filepath.Join(b.DataDir, PartsFile))
	if err != nil {
		return nil, fmt.Errorf("loading parts: %w", err)
	}
	eligibleParts := make(map[string]bool)
	for _, p := range parts {
		if eligibleCategories[p.CategoryID] && has1x1Footprint(p.Name) {
			eligibleParts[p.Num] = true
		}
	}

	// Colors actually used on an eligible 1x1 flat tile or plate.
	usedColorIDs := make(map[int]bool)
	err = ForEachInventoryChunk(filepath.Join(b.DataDir, InventoryPartsFile), chunkSize,
		func(chunk []InventoryPart) error {
			for _, ip := range chunk {
				if eligibleParts[ip.PartNum] {
					usedColorIDs[ip.ColorID] = true
				}
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("loading inventory parts: %w", err)
	}

	colors, err := LoadColors(filepath.Join(b.DataDir, ColorsFile))
	if err != nil {
		return nil, fmt.Errorf("loading colors: %w", err)
	}

	var entries []Entry
	for _, c := range colors {
		if !usedColorIDs[c.ID] {
			continue
		}
		if c.IsTransparent {
			continue
		}
		if c.LastYear < refYear-b.MaxAgeYears {
			continue
		}
		if c.LastYear < refYear-b.RetiredCutoffYears {
			continue
		}
		rgb, err := colorspace.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("color %d (%s): %w", c.ID, c.Name, err)
		}
		entries = append(entries, Entry{
			ID:   c.ID,
			Name: c.Name,
			Hex:  c.Hex,
			RGB:  rgb,
			Lab:  rgb.ToLab(),
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no catalog color passed the eligibility filter (reference year %d)", ErrEmptyPalette, refYear)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return New(entries), nil
}

// has1x1Footprint reports whether a part name describes a 1 x 1 part.
// The catalog spells footprints as "1 x 1", so the match must not bleed
// into "1 x 10" or "11 x 1".
func has1x1Footprint(name string) bool {
	const needle = "1 x 1"
	for i := 0; i+len(needle) <= len(name); i++ {
		if name[i:i+len(needle)] != needle {
			continue
		}
		if i > 0 && isDigit(name[i-1]) {
			continue
		}
		if end := i + len(needle); end < len(name) && isDigit(name[end]) {
			continue
		}
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
