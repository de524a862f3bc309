package loader

import (
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"tabscrub/internal/dataset"
)

// readXLSX parses a modern Excel workbook. The first sheet is the
// dataset; its first row is the header.
func readXLSX(path string) (*dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return tableFromSheet(rows), nil
}

// readXLS parses a legacy BIFF workbook, which excelize cannot open.
func readXLS(path string) (*dataset.Table, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("failed to open first sheet: %w", err)
	}

	var rows [][]string
	for i := 0; i <= sheet.GetNumberRows(); i++ {
		r, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		var rec []string
		for _, cell := range r.GetCols() {
			rec = append(rec, cell.GetString())
		}
		rows = append(rows, rec)
	}
	return tableFromSheet(rows), nil
}

func tableFromSheet(rows [][]string) *dataset.Table {
	if len(rows) == 0 {
		return &dataset.Table{}
	}
	return dataset.FromRecords(rows[0], rows[1:])
}
