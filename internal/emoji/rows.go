package emoji

// Breakpoints are terminal widths, in columns, separating the four
// items-per-row tiers.
type Breakpoints struct {
	Small  int
	Medium int
	Large  int
}

// DefaultBreakpoints returns the built-in tier boundaries.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Small: 48, Medium: 64, Large: 96}
}

// Valid reports whether the boundaries are positive and strictly increasing.
func (b Breakpoints) Valid() bool {
	return b.Small > 0 && b.Small < b.Medium && b.Medium < b.Large
}

// ItemsPerRow maps a viewport width to the number of grid cells per row.
func (b Breakpoints) ItemsPerRow(width int) int {
	if !b.Valid() {
		b = DefaultBreakpoints()
	}
	switch {
	case width < b.Small:
		return 4
	case width < b.Medium:
		return 6
	case width < b.Large:
		return 8
	default:
		return 10
	}
}

// Rows chunks records into contiguous rows of perRow items. The last row may
// be shorter. Rows share the backing array of records.
func Rows(records []Record, perRow int) [][]Record {
	if perRow < 1 {
		perRow = 1
	}
	n := (len(records) + perRow - 1) / perRow
	out := make([][]Record, 0, n)
	for i := 0; i < len(records); i += perRow {
		end := min(i+perRow, len(records))
		out = append(out, records[i:end:end])
	}
	return out
}
