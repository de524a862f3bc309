package dataset

// Kind is the declared type tag of a column. It is assigned once when a
// table is loaded and every cleaning stage dispatches on it instead of
// re-inspecting values at runtime.
type Kind string

const (
	KindNumeric  Kind = "numeric"
	KindText     Kind = "text"
	KindBoolean  Kind = "boolean"
	KindTemporal Kind = "temporal"
)

// Cell is a single table value. Raw holds the textual form as loaded;
// for numeric columns Num holds the parsed value. A Null cell has no
// recorded value and both Raw and Num are meaningless.
type Cell struct {
	Raw  string
	Num  float64
	Null bool
}

// Numeric returns a non-null numeric cell.
func Numeric(v float64) Cell {
	return Cell{Raw: formatFloat(v), Num: v}
}

// Text returns a non-null textual cell.
func Text(s string) Cell {
	return Cell{Raw: s}
}

// Null returns a missing-value cell.
func Null() Cell {
	return Cell{Null: true}
}

// Column is an ordered sequence of cells sharing one Kind.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// MissingCount returns the number of null cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Null {
			n++
		}
	}
	return n
}

// MissingFraction returns the fraction of null cells relative to the
// column length. An empty column reports zero.
func (c *Column) MissingFraction() float64 {
	if len(c.Cells) == 0 {
		return 0
	}
	return float64(c.MissingCount()) / float64(len(c.Cells))
}

// NumericValues returns the non-null parsed values of a numeric column
// in row order.
func (c *Column) NumericValues() []float64 {
	vals := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Null {
			vals = append(vals, cell.Num)
		}
	}
	return vals
}

// Table is an in-memory tabular dataset: ordered named columns with
// positional row alignment. All columns have equal length at every
// pipeline stage.
type Table struct {
	Columns []Column
}

// New returns an empty table with the given column names, all typed as
// text. Mostly useful in tests; loaders build typed tables directly.
func New(names ...string) *Table {
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Kind: KindText}
	}
	return &Table{Columns: cols}
}

// NumRows returns the row count. Columns are positionally aligned, so
// the first column's length is authoritative.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// NumCols returns the column count.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Header returns the column names in declared order.
func (t *Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}

// Row returns row i formatted as strings, one per column. Null cells
// format as the empty string.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j := range t.Columns {
		row[j] = t.Columns[j].FormatCell(i)
	}
	return row
}

// Rows returns every row formatted as strings, suitable for CSV export.
func (t *Table) Rows() [][]string {
	rows := make([][]string, t.NumRows())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// FilterRows keeps only the rows where keep[i] is true, preserving
// order. keep must have one entry per row.
func (t *Table) FilterRows(keep []bool) {
	for j := range t.Columns {
		cells := t.Columns[j].Cells[:0]
		for i, cell := range t.Columns[j].Cells {
			if keep[i] {
				cells = append(cells, cell)
			}
		}
		t.Columns[j].Cells = cells
	}
}

// Select returns a new table with the same schema containing only the
// rows at the given indices, in the given order.
func (t *Table) Select(indices []int) *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for j := range t.Columns {
		col := Column{Name: t.Columns[j].Name, Kind: t.Columns[j].Kind}
		col.Cells = make([]Cell, 0, len(indices))
		for _, i := range indices {
			col.Cells = append(col.Cells, t.Columns[j].Cells[i])
		}
		out.Columns[j] = col
	}
	return out
}

// DropColumns removes the columns at the given indices. Indices must be
// valid; order of the remaining columns is preserved.
func (t *Table) DropColumns(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	cols := t.Columns[:0]
	for i, col := range t.Columns {
		if !drop[i] {
			cols = append(cols, col)
		}
	}
	t.Columns = cols
}
