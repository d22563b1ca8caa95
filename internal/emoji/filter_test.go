package emoji

import (
	"strings"
	"testing"
)

func glyphs(records []Record) string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Glyph)
	}
	return strings.Join(out, ",")
}

func TestFilterExamples(t *testing.T) {
	records := Builtin().Records()
	tests := []struct {
		name     string
		query    string
		category CategoryID
		want     string
	}{
		{name: "heart", query: "heart", category: CategoryAll, want: "❤️,💔"},
		{name: "animals only", query: "", category: CategoryAnimals, want: "🐶,🐱,🐭,🐹,🐰,🐾"},
		{name: "alias match", query: "benji", category: CategoryAll, want: "🐶"},
		{name: "glyph match", query: "🍋", category: CategoryAll, want: "🍋"},
		{name: "query and category", query: "coffee", category: CategoryFood, want: "☕,🫐"},
		{name: "category excludes matches", query: "coffee", category: CategoryTravel, want: ""},
		{name: "no match", query: "zzzz", category: CategoryAll, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := glyphs(Filter(records, tt.query, tt.category))
			if got != tt.want {
				t.Fatalf("Filter(%q, %q) = %q, want %q", tt.query, tt.category, got, tt.want)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	records := Builtin().Records()
	got := Filter(records, "", CategoryAll)
	if len(got) != len(records) {
		t.Fatalf("len = %d, want %d", len(got), len(records))
	}
	for i := range got {
		if !got[i].Equal(records[i]) {
			t.Fatalf("order changed at %d: %q != %q", i, got[i].Glyph, records[i].Glyph)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	records := Builtin().Records()
	for _, q := range []string{"", "face", "smil", "HAND", "_", "flag", "nothing-here"} {
		once := Filter(records, q, CategoryAll)
		twice := Filter(once, q, CategoryAll)
		if glyphs(once) != glyphs(twice) {
			t.Fatalf("query %q: once=%q twice=%q", q, glyphs(once), glyphs(twice))
		}
	}
}

func TestFilterCategoryAllIsNoOp(t *testing.T) {
	records := Builtin().Records()
	for _, q := range []string{"", "face", "flag", "e"} {
		queryOnly := Filter(records, q, "")
		withAll := Filter(records, q, CategoryAll)
		if glyphs(queryOnly) != glyphs(withAll) {
			t.Fatalf("query %q: %q != %q", q, glyphs(queryOnly), glyphs(withAll))
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	records := Builtin().Records()
	upper := Filter(records, "DOG", CategoryAll)
	lower := Filter(records, "dog", CategoryAll)
	if glyphs(upper) != glyphs(lower) {
		t.Fatalf("DOG=%q dog=%q", glyphs(upper), glyphs(lower))
	}
	if len(lower) == 0 {
		t.Fatal("expected dog to match")
	}
}

func TestFilterEmptyDataset(t *testing.T) {
	got := Filter(nil, "heart", CategoryAll)
	if got == nil || len(got) != 0 {
		t.Fatalf("Filter(nil) = %#v, want empty non-nil slice", got)
	}
}
