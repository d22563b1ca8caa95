package service

import (
	"context"
	"fmt"
	"log"

	"github.com/jask/emojipick/internal/clipboard"
	"github.com/jask/emojipick/internal/database/repository"
	"github.com/jask/emojipick/internal/emoji"
)

// History is the part of repository.HistoryRepo the copy flow needs.
type History interface {
	Add(ctx context.Context, glyph string) (repository.HistoryEntry, error)
	Recent(ctx context.Context, limit int) ([]repository.RecentGlyph, error)
}

// CopyService puts a record's glyph on the clipboard and remembers it.
type CopyService struct {
	Clipboard clipboard.Writer
	History   History // optional
}

// Copy writes rec's glyph to the clipboard. Clipboard failures are logged and
// otherwise treated as success; only a history write error is returned.
func (s *CopyService) Copy(ctx context.Context, rec emoji.Record) error {
	if s.Clipboard != nil {
		if err := s.Clipboard.Write(ctx, rec.Glyph); err != nil {
			log.Printf("clipboard write %q: %v", rec.Glyph, err)
		}
	}
	if s.History == nil {
		return nil
	}
	if _, err := s.History.Add(ctx, rec.Glyph); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// Recent returns up to limit recently copied glyphs, newest first.
func (s *CopyService) Recent(ctx context.Context, limit int) ([]string, error) {
	if s.History == nil {
		return nil, nil
	}
	recent, err := s.History.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	out := make([]string, 0, len(recent))
	for _, r := range recent {
		out = append(out, r.Glyph)
	}
	return out, nil
}
