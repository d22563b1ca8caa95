package repository

import "time"

// HistoryEntry represents a copy_history row.
type HistoryEntry struct {
	ID       string
	Glyph    string
	CopiedAt time.Time
}

// RecentGlyph is a distinct glyph from the history with its copy count.
type RecentGlyph struct {
	Glyph string
	Count int
}
