package palette

import (
	"errors"

	"github.com/ironsheep/brick-mosaic/internal/colorspace"
)

// ErrEmptyPalette is returned when the eligibility filter leaves no colors
// to match against. There is no fallback palette; the run must abort.
var ErrEmptyPalette = errors.New("eligible palette is empty")

// Entry is one matchable palette color, derived from a catalog color that
// survived the eligibility filter. Entries are immutable after construction.
type Entry struct {
	ID   int
	Name string
	Hex  string // catalog hex string, 6 uppercase hex digits
	RGB  colorspace.RGB
	Lab  colorspace.Lab
}

// Palette is the filtered, ordered set of matchable colors.
//
// Entry order is ascending catalog id and never changes after construction,
// so matching ties resolve the same way on every run. The palette is shared
// read-only across all matching workers; nothing may mutate it once built.
type Palette struct {
	entries []Entry
	byID    map[int]int
	byRGB   map[colorspace.RGB]int
}

// New builds a palette from already-filtered entries, preserving their order.
// Entries with a duplicate id or RGB keep the first occurrence in the index.
func New(entries []Entry) *Palette {
	p := &Palette{
		entries: entries,
		byID:    make(map[int]int, len(entries)),
		byRGB:   make(map[colorspace.RGB]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := p.byID[e.ID]; !ok {
			p.byID[e.ID] = i
		}
		if _, ok := p.byRGB[e.RGB]; !ok {
			p.byRGB[e.RGB] = i
		}
	}
	return p
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns the entries in stable order. The slice is shared; callers
// must treat it as read-only.
func (p *Palette) Entries() []Entry {
	return p.entries
}

// ByID looks up an entry by catalog color id.
func (p *Palette) ByID(id int) (Entry, bool) {
	i, ok := p.byID[id]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// ByRGB looks up an entry by its exact RGB value.
func (p *Palette) ByRGB(rgb colorspace.RGB) (Entry, bool) {
	i, ok := p.byRGB[rgb]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}
