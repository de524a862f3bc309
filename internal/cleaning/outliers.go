package cleaning

import (
	"log/slog"

	"tabscrub/internal/dataset"
)

// FlagOutliers nulls numeric values outside the IQR-derived bounds
// [Q1 - k*IQR, Q3 + k*IQR], where Q1/Q3 are the quartiles of the
// column's current non-missing values and k is the multiplier (1.5 by
// default). Values strictly outside a bound are replaced with a
// missing-value marker, never clamped and never dropped. Non-numeric
// columns are untouched.
//
// This deliberately reintroduces nulls into numeric columns after the
// missing-value stage already ran, and no second imputation pass
// follows; the final output may contain nulls in numeric columns.
func FlagOutliers(t *dataset.Table, multiplier float64) *dataset.Table {
	for j := range t.Columns {
		col := &t.Columns[j]
		if col.Kind != dataset.KindNumeric {
			continue
		}
		vals := col.NumericValues()
		if len(vals) == 0 {
			continue
		}
		q1 := percentile(vals, 25)
		q3 := percentile(vals, 75)
		iqr := q3 - q1
		lower := q1 - multiplier*iqr
		upper := q3 + multiplier*iqr

		flagged := 0
		for i := range col.Cells {
			if col.Cells[i].Null {
				continue
			}
			if v := col.Cells[i].Num; v < lower || v > upper {
				col.Cells[i] = dataset.Null()
				flagged++
			}
		}
		if flagged > 0 {
			slog.Debug("nulled outlier values",
				slog.String("column", col.Name),
				slog.Int("flagged", flagged),
				slog.Float64("lower_bound", lower),
				slog.Float64("upper_bound", upper))
		}
	}
	return t
}
