package cleaning

import (
	"log/slog"

	"tabscrub/internal/dataset"
)

// PruneSparseColumns drops every column whose missing-value fraction is
// strictly greater than threshold, measured against the current row
// count. Running after FillMissing this is near-ineffective, since that
// stage already removed or filled nulls; it stays in the sequence as a
// hardening step for tables that reach it by another path.
func PruneSparseColumns(t *dataset.Table, threshold float64) *dataset.Table {
	var drop []int
	for j := range t.Columns {
		if frac := t.Columns[j].MissingFraction(); frac > threshold {
			drop = append(drop, j)
			slog.Debug("dropping sparse column",
				slog.String("column", t.Columns[j].Name),
				slog.Float64("missing_fraction", frac))
		}
	}
	t.DropColumns(drop)
	return t
}
