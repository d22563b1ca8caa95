package emoji

import "testing"

func TestItemsPerRowTiers(t *testing.T) {
	b := DefaultBreakpoints()
	tests := []struct {
		width int
		want  int
	}{
		{0, 4},
		{47, 4},
		{48, 6},
		{63, 6},
		{64, 8},
		{95, 8},
		{96, 10},
		{300, 10},
	}
	for _, tt := range tests {
		if got := b.ItemsPerRow(tt.width); got != tt.want {
			t.Errorf("ItemsPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestItemsPerRowInvalidBreakpointsFallBack(t *testing.T) {
	b := Breakpoints{Small: 80, Medium: 40, Large: 100}
	if got := b.ItemsPerRow(50); got != 6 {
		t.Fatalf("ItemsPerRow = %d, want default tier 6", got)
	}
}

func TestRowsChunking(t *testing.T) {
	records := Builtin().Records()[:10]
	rows := Rows(records, 4)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if len(rows[0]) != 4 || len(rows[1]) != 4 || len(rows[2]) != 2 {
		t.Fatalf("row sizes = %d,%d,%d", len(rows[0]), len(rows[1]), len(rows[2]))
	}
	if rows[2][1].Glyph != records[9].Glyph {
		t.Fatalf("last cell = %q, want %q", rows[2][1].Glyph, records[9].Glyph)
	}
}

func TestRowsEdgeCases(t *testing.T) {
	if rows := Rows(nil, 8); len(rows) != 0 {
		t.Fatalf("Rows(nil) = %d rows, want 0", len(rows))
	}
	records := Builtin().Records()[:3]
	if rows := Rows(records, 0); len(rows) != 3 {
		t.Fatalf("Rows(perRow=0) = %d rows, want 3", len(rows))
	}
}

func TestRowsAppendDoesNotClobberNext(t *testing.T) {
	records := Builtin().Records()[:4]
	rows := Rows(records, 2)
	_ = append(rows[0], Record{Glyph: "x"})
	if rows[1][0].Glyph != records[2].Glyph {
		t.Fatalf("append to row 0 overwrote row 1: %q", rows[1][0].Glyph)
	}
}
