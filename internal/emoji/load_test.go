package emoji

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const extraTOML = `
[[emoji]]
glyph = "🦀"
description = "Crab"
category = "Animals"
aliases = ["crab", " rust ", ""]

[[emoji]]
glyph = "🍕"
description = "Pizza"
category = "food"
`

func TestDecodeExtraRecords(t *testing.T) {
	records, err := Decode(strings.NewReader(extraTOML))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	crab := records[0]
	if crab.Category != CategoryAnimals {
		t.Fatalf("category = %q, want animals", crab.Category)
	}
	if strings.Join(crab.Aliases, ",") != "crab,rust" {
		t.Fatalf("aliases = %v", crab.Aliases)
	}
	if records[1].Aliases != nil {
		t.Fatalf("pizza aliases = %v, want nil", records[1].Aliases)
	}
}

func TestDecodeRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown category", "[[emoji]]\nglyph = \"🦀\"\ndescription = \"Crab\"\ncategory = \"sea\"\n", "unknown category"},
		{"all category", "[[emoji]]\nglyph = \"🦀\"\ndescription = \"Crab\"\ncategory = \"all\"\n", "not assignable"},
		{"two glyphs", "[[emoji]]\nglyph = \"🦀🦀\"\ndescription = \"Crabs\"\ncategory = \"animals\"\n", "grapheme"},
		{"no description", "[[emoji]]\nglyph = \"🦀\"\ncategory = \"animals\"\n", "description is required"},
		{"bad toml", "[[emoji]\n", "parse dataset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadFileExtendsBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.toml")
	if err := os.WriteFile(path, []byte(extraTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	extra, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	ds, err := Builtin().Extend(extra)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if ds.Len() != Builtin().Len()+2 {
		t.Fatalf("len = %d, want %d", ds.Len(), Builtin().Len()+2)
	}
	got := Filter(ds.Records(), "rust", CategoryAll)
	if len(got) != 1 || got[0].Glyph != "🦀" {
		t.Fatalf("rust search = %q", glyphs(got))
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
