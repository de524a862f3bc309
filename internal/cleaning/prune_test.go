package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabscrub/internal/dataset"
)

func sparseColumn(name string, missing, total int) dataset.Column {
	col := dataset.Column{Name: name, Kind: dataset.KindNumeric}
	for i := 0; i < total; i++ {
		if i < missing {
			col.Cells = append(col.Cells, dataset.Null())
		} else {
			col.Cells = append(col.Cells, dataset.Numeric(float64(i)))
		}
	}
	return col
}

func TestPruneSparseColumns(t *testing.T) {
	tbl := &dataset.Table{Columns: []dataset.Column{
		sparseColumn("dense", 0, 4),
		sparseColumn("mostly_missing", 3, 4),
		sparseColumn("exactly_half", 2, 4),
	}}

	PruneSparseColumns(tbl, 0.5)

	// Strictly greater than the threshold drops; exactly 0.5 survives.
	require.Equal(t, []string{"dense", "exactly_half"}, tbl.Header())
	assert.Equal(t, 4, tbl.NumRows())
}

func TestPruneSparseColumnsAllSurvive(t *testing.T) {
	tbl := &dataset.Table{Columns: []dataset.Column{
		sparseColumn("a", 1, 4),
		sparseColumn("b", 0, 4),
	}}

	PruneSparseColumns(tbl, 0.5)

	assert.Equal(t, 2, tbl.NumCols())
	for _, col := range tbl.Columns {
		assert.LessOrEqual(t, col.MissingFraction(), 0.5)
	}
}
