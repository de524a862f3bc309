package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabscrub/internal/dataset"
)

func TestFillMissingMeanFillsNumeric(t *testing.T) {
	// [1, 2, 3, null, 100] -> the null becomes the mean 26.5.
	tbl := dataset.FromRecords(
		[]string{"value"},
		[][]string{{"1"}, {"2"}, {"3"}, {""}, {"100"}},
	)
	require.Equal(t, dataset.KindNumeric, tbl.Columns[0].Kind)

	FillMissing(tbl)

	col := tbl.Columns[0]
	require.Equal(t, 5, len(col.Cells))
	assert.Equal(t, 0, col.MissingCount())
	assert.InDelta(t, 26.5, col.Cells[3].Num, 1e-9)
}

func TestFillMissingDropsRowsForTextColumns(t *testing.T) {
	tbl := dataset.FromRecords(
		[]string{"name", "score"},
		[][]string{
			{"alice", "1"},
			{"", "2"},
			{"carol", "3"},
		},
	)

	FillMissing(tbl)

	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"alice", "1"}, tbl.Row(0))
	assert.Equal(t, []string{"carol", "3"}, tbl.Row(1))
}

func TestFillMissingNoMissingRemains(t *testing.T) {
	tbl := dataset.FromRecords(
		[]string{"name", "score", "active"},
		[][]string{
			{"alice", "1", "true"},
			{"", "", "false"},
			{"carol", "3", ""},
			{"dave", "4", "true"},
		},
	)

	FillMissing(tbl)

	for _, col := range tbl.Columns {
		assert.Zero(t, col.MissingCount(), "column %s still has missing values", col.Name)
	}
}

func TestFillMissingColumnOrderMatters(t *testing.T) {
	// The text column is processed before the numeric one, so the row
	// it drops must not contribute to the numeric mean... but the mean
	// is computed per column over whatever rows remain when that column
	// is reached. Here row 2 is dropped by "name" first, then "score"
	// is mean-filled over the remaining rows.
	tbl := dataset.FromRecords(
		[]string{"name", "score"},
		[][]string{
			{"alice", "10"},
			{"", "1000"},
			{"carol", ""},
			{"dave", "20"},
		},
	)

	FillMissing(tbl)

	require.Equal(t, 3, tbl.NumRows())
	// Mean of [10, 20] = 15 fills carol's score.
	assert.InDelta(t, 15.0, tbl.Columns[1].Cells[1].Num, 1e-9)
}

func TestFillMissingAllMissingNumericLeftUnset(t *testing.T) {
	tbl := &dataset.Table{Columns: []dataset.Column{
		{
			Name: "empty",
			Kind: dataset.KindNumeric,
			Cells: []dataset.Cell{
				dataset.Null(), dataset.Null(), dataset.Null(),
			},
		},
	}}

	FillMissing(tbl)

	assert.Equal(t, 3, tbl.Columns[0].MissingCount())
}
