package cleaning

import (
	"log/slog"

	"tabscrub/internal/dataset"
)

// FillMissing resolves missing values column by column, in declared
// column order. Numeric columns are mean-filled: the mean is computed
// over the non-missing values before any replacement in that column.
// Every other kind drops the rows that are missing in that column, and
// the drop takes effect before the next column is examined, so later
// columns are evaluated against the reduced row set.
//
// Known limitation: an all-missing numeric column has no defined mean
// and its values are left unset rather than filled with NaN.
func FillMissing(t *dataset.Table) *dataset.Table {
	for j := range t.Columns {
		col := &t.Columns[j]
		if col.Kind == dataset.KindNumeric {
			fillColumnMean(col)
			continue
		}
		dropMissingRows(t, j)
	}
	return t
}

func fillColumnMean(col *dataset.Column) {
	vals := col.NumericValues()
	if len(vals) == 0 {
		// Undefined mean; leave the column unset.
		return
	}
	m := mean(vals)
	filled := 0
	for i := range col.Cells {
		if col.Cells[i].Null {
			col.Cells[i] = dataset.Numeric(m)
			filled++
		}
	}
	if filled > 0 {
		slog.Debug("mean-filled numeric column",
			slog.String("column", col.Name),
			slog.Int("filled", filled),
			slog.Float64("mean", m))
	}
}

func dropMissingRows(t *dataset.Table, colIdx int) {
	col := &t.Columns[colIdx]
	keep := make([]bool, len(col.Cells))
	dropped := 0
	for i, cell := range col.Cells {
		keep[i] = !cell.Null
		if cell.Null {
			dropped++
		}
	}
	if dropped == 0 {
		return
	}
	t.FilterRows(keep)
	slog.Debug("dropped rows with missing values",
		slog.String("column", col.Name),
		slog.Int("dropped", dropped))
}
