package emoji

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileRecord is one [[emoji]] block of an extra dataset file.
type fileRecord struct {
	Glyph       string   `toml:"glyph"`
	Description string   `toml:"description"`
	Category    string   `toml:"category"`
	Aliases     []string `toml:"aliases"`
}

type datasetFile struct {
	Emoji []fileRecord `toml:"emoji"`
}

// LoadFile reads extra records from a TOML file:
//
//	[[emoji]]
//	glyph = "🦀"
//	description = "Crab"
//	category = "animals"
//	aliases = ["crab", "rust"]
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode parses TOML dataset content and validates every record.
func Decode(r io.Reader) ([]Record, error) {
	var file datasetFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	out := make([]Record, 0, len(file.Emoji))
	for i, fr := range file.Emoji {
		rec := Record{
			Glyph:       strings.TrimSpace(fr.Glyph),
			Description: strings.TrimSpace(fr.Description),
			Category:    CategoryID(strings.ToLower(strings.TrimSpace(fr.Category))),
		}
		for _, a := range fr.Aliases {
			if a = strings.TrimSpace(a); a != "" {
				rec.Aliases = append(rec.Aliases, a)
			}
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("emoji[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
