package emoji

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// CategoryID tags a record with one of a fixed set of categories.
type CategoryID string

const (
	CategoryAll        CategoryID = "all"
	CategorySmileys    CategoryID = "smileys"
	CategoryPeople     CategoryID = "people"
	CategoryAnimals    CategoryID = "animals"
	CategoryFood       CategoryID = "food"
	CategoryTravel     CategoryID = "travel"
	CategoryActivities CategoryID = "activities"
	CategoryObjects    CategoryID = "objects"
	CategorySymbols    CategoryID = "symbols"
	CategoryFlags      CategoryID = "flags"
)

// Category is a display entry for a CategoryID.
type Category struct {
	ID   CategoryID
	Name string
	Icon string
}

var categories = []Category{
	{ID: CategoryAll, Name: "All", Icon: "🌟"},
	{ID: CategorySmileys, Name: "Smileys & Emotion", Icon: "😀"},
	{ID: CategoryPeople, Name: "People & Body", Icon: "👋"},
	{ID: CategoryAnimals, Name: "Animals & Nature", Icon: "🐶"},
	{ID: CategoryFood, Name: "Food & Drink", Icon: "🍔"},
	{ID: CategoryTravel, Name: "Travel & Places", Icon: "✈️"},
	{ID: CategoryActivities, Name: "Activities", Icon: "⚽"},
	{ID: CategoryObjects, Name: "Objects", Icon: "💡"},
	{ID: CategorySymbols, Name: "Symbols", Icon: "❤️"},
	{ID: CategoryFlags, Name: "Flags", Icon: "🏁"},
}

// Categories returns the category table in display order, "all" first.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// LookupCategory finds a category by id. The second result is false for ids
// outside the fixed set.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Record is a single emoji entry.
type Record struct {
	Glyph       string
	Description string
	Category    CategoryID
	Aliases     []string
}

// Equal reports value equality, aliases compared in order.
func (r Record) Equal(o Record) bool {
	if r.Glyph != o.Glyph || r.Description != o.Description || r.Category != o.Category {
		return false
	}
	if len(r.Aliases) != len(o.Aliases) {
		return false
	}
	for i := range r.Aliases {
		if r.Aliases[i] != o.Aliases[i] {
			return false
		}
	}
	return true
}

// Validate checks that the record can be shown in the grid: a single
// grapheme glyph, a description, and a concrete category.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Glyph) == "" {
		return fmt.Errorf("glyph is required")
	}
	if n := uniseg.GraphemeClusterCount(r.Glyph); n != 1 {
		return fmt.Errorf("glyph %q: want 1 grapheme cluster, got %d", r.Glyph, n)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("glyph %q: description is required", r.Glyph)
	}
	if r.Category == CategoryAll {
		return fmt.Errorf("glyph %q: category %q is not assignable", r.Glyph, r.Category)
	}
	if _, ok := LookupCategory(r.Category); !ok {
		return fmt.Errorf("glyph %q: unknown category %q", r.Glyph, r.Category)
	}
	return nil
}

// Dataset is an ordered, read-only set of records.
type Dataset struct {
	records []Record
}

// NewDataset validates and wraps records. The slice is copied.
func NewDataset(records []Record) (*Dataset, error) {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record[%d]: %w", i, err)
		}
	}
	return &Dataset{records: append([]Record(nil), records...)}, nil
}

// Records returns a copy of the records in insertion order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return append([]Record(nil), d.records...)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Extend returns a new dataset with extra appended after d's records.
// Records equal to one already present are skipped.
func (d *Dataset) Extend(extra []Record) (*Dataset, error) {
	out := d.Records()
	for _, r := range extra {
		if !containsRecord(out, r) {
			out = append(out, r)
		}
	}
	return NewDataset(out)
}

func containsRecord(records []Record, r Record) bool {
	for _, have := range records {
		if have.Equal(r) {
			return true
		}
	}
	return false
}
