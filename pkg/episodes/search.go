package episodes

import (
	"slices"
	"strings"
)

// Search returns records whose name contains query, case-insensitively,
// ranked by where the match starts and then by file order.
// A limit of zero or less returns every match.
func Search(m *Mapping, query string, limit int) []Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type hit struct {
		record Record
		index  int
	}
	var hits []hit
	for _, r := range m.Records() {
		if i := strings.Index(strings.ToLower(r.Name), query); i >= 0 {
			hits = append(hits, hit{record: r, index: i})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return a.index - b.index
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Record, len(hits))
	for i, h := range hits {
		out[i] = h.record
	}
	return out
}
