package emoji

import "strings"

// Filter returns the records matching query and category, in input order.
//
// A non-empty query keeps records whose description, glyph, or any alias
// contains it, ignoring case. CategoryAll applies no category restriction.
// The result is never nil.
func Filter(records []Record, query string, category CategoryID) []Record {
	q := strings.ToLower(query)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		if category != CategoryAll && category != "" && r.Category != category {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesQuery expects q already lowercased.
func matchesQuery(r Record, q string) bool {
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	if strings.Contains(r.Glyph, q) {
		return true
	}
	for _, alias := range r.Aliases {
		if strings.Contains(strings.ToLower(alias), q) {
			return true
		}
	}
	return false
}
