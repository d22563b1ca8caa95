package emoji

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the search term closest to query among the records'
// aliases and description words, or "" when nothing is close enough.
// It backs the "did you mean" hint shown with an empty result.
func Suggest(records []Record, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	limit := max(1, len([]rune(q))/3)
	best, bestDist := "", limit+1
	consider := func(term string) {
		term = strings.ToLower(term)
		if term == "" || term == q {
			return
		}
		if d := levenshtein.ComputeDistance(q, term); d < bestDist {
			best, bestDist = term, d
		}
	}
	for _, r := range records {
		for _, alias := range r.Aliases {
			consider(alias)
		}
		for _, word := range strings.Fields(r.Description) {
			consider(word)
		}
	}
	return best
}
