package palette

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CatalogColor is one record of the colors dataset.
//
// FirstYear and LastYear are the first and last production years reported
// by the catalog; a zero LastYear means the catalog does not know when (or
// whether) the color was last produced, which keeps it out of any palette.
type CatalogColor struct {
	ID            int
	Name          string
	Hex           string // 6 hex digits, no leading "#"
	IsTransparent bool
	FirstYear     int
	LastYear      int
}

// PartCategory is one record of the part_categories dataset.
type PartCategory struct {
	ID   int
	Name string
}

// Part is one record of the parts dataset.
type Part struct {
	Num        string
	Name       string
	CategoryID int
}

// InventoryPart is one record of the inventory_parts dataset. It ties a
// part number to a color it has actually been produced in.
type InventoryPart struct {
	InventoryID int
	PartNum     string
	ColorID     int
	Quantity    int
}

// Dataset file names inside the data directory, matching the catalog dumps.
const (
	ColorsFile         = "colors.csv"
	PartsFile          = "parts.csv"
	PartCategoriesFile = "part_categories.csv"
	InventoryPartsFile = "inventory_parts.csv"
)

// header maps column names to their index in the CSV header row, so loaders
// tolerate column reordering and extra columns across dump versions.
type header map[string]int

func readHeader(r *csv.Reader, path string) (header, error) {
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", path, err)
	}
	h := make(header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}
	return h, nil
}

func (h header) column(record []string, name, path string) (string, error) {
	i, ok := h[name]
	if !ok {
		return "", fmt.Errorf("%s: missing column %q", path, name)
	}
	if i >= len(record) {
		return "", fmt.Errorf("%s: record too short for column %q", path, name)
	}
	return record[i], nil
}

func (h header) intColumn(record []string, name, path string) (int, error) {
	s, err := h.column(record, name, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: column %q: %w", path, name, err)
	}
	return v, nil
}

// optionalIntColumn returns 0 when the column is absent or its value empty.
func (h header) optionalIntColumn(record []string, name, path string) (int, error) {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return 0, nil
	}
	s := strings.TrimSpace(record[i])
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: column %q: %w", path, name, err)
	}
	return v, nil
}

func openCSV(path string) (*os.File, *csv.Reader, header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated per column instead
	h, err := readHeader(r, path)
	if err != nil {
		f.Close()
		return nil, nil, nil, err
	}
	return f, r, h, nil
}

// LoadColors reads the full colors dataset.
func LoadColors(path string) ([]CatalogColor, error) {
	f, r, h, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var colors []CatalogColor
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		id, err := h.intColumn(record, "id", path)
		if err != nil {
			return nil, err
		}
		name, err := h.column(record, "name", path)
		if err != nil {
			return nil, err
		}
		hex, err := h.column(record, "rgb", path)
		if err != nil {
			return nil, err
		}
		trans, err := h.column(record, "is_trans", path)
		if err != nil {
			return nil, err
		}
		firstYear, err := h.optionalIntColumn(record, "y1", path)
		if err != nil {
			return nil, err
		}
		lastYear, err := h.optionalIntColumn(record, "y2", path)
		if err != nil {
			return nil, err
		}

		colors = append(colors, CatalogColor{
			ID:            id,
			Name:          name,
			Hex:           strings.ToUpper(strings.TrimSpace(hex)),
			IsTransparent: parseBool(trans),
			FirstYear:     firstYear,
			LastYear:      lastYear,
		})
	}
	return colors, nil
}

// LoadPartCategories reads the full part_categories dataset.
func LoadPartCategories(path string) ([]PartCategory, error) {
	f, r, h, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var categories []PartCategory
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		id, err := h.intColumn(record, "id", path)
		if err != nil {
			return nil, err
		}
		name, err := h.column(record, "name", path)
		if err != nil {
			return nil, err
		}
		categories = append(categories, PartCategory{ID: id, Name: name})
	}
	return categories, nil
}

// LoadParts reads the full parts dataset.
func LoadParts(path string) ([]Part, error) {
	f, r, h, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var parts []Part
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		num, err := h.column(record, "part_num", path)
		if err != nil {
			return nil, err
		}
		name, err := h.column(record, "name", path)
		if err != nil {
			return nil, err
		}
		catID, err := h.intColumn(record, "part_cat_id", path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Num: num, Name: name, CategoryID: catID})
	}
	return parts, nil
}

// ForEachInventoryChunk streams the inventory_parts dataset in chunks of at
// most chunkSize records, invoking fn once per chunk.
//
// The dataset is by far the largest of the four; streaming it bounds peak
// memory. Chunk boundaries carry no meaning: callers must produce the same
// result for any chunk size, and fn must not retain the slice it is given.
func ForEachInventoryChunk(path string, chunkSize int, fn func([]InventoryPart) error) error {
	if chunkSize < 1 {
		chunkSize = 1
	}
	f, r, h, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()

	chunk := make([]InventoryPart, 0, chunkSize)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if err := fn(chunk); err != nil {
			return err
		}
		chunk = chunk[:0]
		return nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		invID, err := h.intColumn(record, "inventory_id", path)
		if err != nil {
			return err
		}
		partNum, err := h.column(record, "part_num", path)
		if err != nil {
			return err
		}
		colorID, err := h.intColumn(record, "color_id", path)
		if err != nil {
			return err
		}
		quantity, err := h.optionalIntColumn(record, "quantity", path)
		if err != nil {
			return err
		}

		chunk = append(chunk, InventoryPart{
			InventoryID: invID,
			PartNum:     partNum,
			ColorID:     colorID,
			Quantity:    quantity,
		})
		if len(chunk) == chunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "true", "1", "y", "yes":
		return true
	}
	return false
}
