package dataset

import (
	"fmt"
	"strings"
)

// FormatCell returns the textual form of cell i for export. Null cells
// format as the empty string. Numeric cells use the parsed value so
// thousands separators and similar input artifacts never reach the
// output; other kinds keep their raw form.
func (c *Column) FormatCell(i int) string {
	cell := c.Cells[i]
	if cell.Null {
		return ""
	}
	if c.Kind == KindNumeric {
		return formatFloat(cell.Num)
	}
	return cell.Raw
}

// formatFloat formats a float64 for CSV output: six decimal places with
// trailing zeros (and a bare trailing point) trimmed, so 26.500000
// exports as 26.5 and 100.000000 as 100.
func formatFloat(f float64) string {
	s := fmt.Sprintf("%.6f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
