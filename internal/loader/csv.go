package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"tabscrub/internal/dataset"
)

// readCSV parses a CSV file. Decoding is best-effort: bytes that are
// not valid UTF-8 are discarded rather than failing the whole load.
// Records may have ragged lengths; short rows are padded with missing
// cells when the table is built.
func readCSV(path string) (*dataset.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	data = bytes.ToValidUTF8(data, nil)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var header []string
	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		if header == nil {
			header = rec
			continue
		}
		records = append(records, rec)
	}

	return dataset.FromRecords(header, records), nil
}
