package cleaning

import (
	"log/slog"
	"strings"

	"tabscrub/internal/dataset"
)

// rowKeySep separates cell values inside a row key. A unit separator
// cannot occur in formatted cell values that came from parsed input.
const rowKeySep = "\x1f"

// Deduplicate removes exact-duplicate rows from the table. The first
// occurrence of each value-group is kept; every later occurrence is
// flagged, collected into the returned side table in original row
// order, and removed from the working table. When no duplicates exist
// the side table is nil and the working table is unchanged.
func Deduplicate(t *dataset.Table) (*dataset.Table, *dataset.Table) {
	n := t.NumRows()
	seen := make(map[string]bool, n)
	keep := make([]bool, n)
	var flagged []int

	for i := 0; i < n; i++ {
		key := strings.Join(t.Row(i), rowKeySep)
		if seen[key] {
			flagged = append(flagged, i)
			continue
		}
		seen[key] = true
		keep[i] = true
	}

	if len(flagged) == 0 {
		return t, nil
	}

	side := t.Select(flagged)
	t.FilterRows(keep)

	slog.Debug("removed duplicate rows",
		slog.Int("duplicates", len(flagged)),
		slog.Int("remaining", t.NumRows()))

	return t, side
}
