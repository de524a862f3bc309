package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Textual markers treated as missing values during inference, matched
// case-insensitively after trimming.
var missingMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// temporalLayouts are the date formats recognized during inference.
var temporalLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// IsMissing reports whether a raw textual value denotes a missing cell.
func IsMissing(raw string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(raw))]
}

// ParseNumber parses a raw cell as a float64, tolerating thousands
// separators ("1,234.5").
func ParseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 64)
	return v, err == nil
}

// InferKind classifies a column from its raw values. A column is
// numeric/boolean/temporal only if every non-missing value parses as
// such; anything else, including an all-missing column, is text.
func InferKind(values []string) Kind {
	seen := false
	isNum, isBool, isTime := true, true, true
	for _, raw := range values {
		if IsMissing(raw) {
			continue
		}
		seen = true
		v := strings.TrimSpace(raw)
		if isNum {
			if _, ok := ParseNumber(v); !ok {
				isNum = false
			}
		}
		if isBool && !parseableBool(v) {
			isBool = false
		}
		if isTime && !parseableTime(v) {
			isTime = false
		}
		if !isNum && !isBool && !isTime {
			return KindText
		}
	}
	switch {
	case !seen:
		return KindText
	case isBool:
		return KindBoolean
	case isNum:
		return KindNumeric
	case isTime:
		return KindTemporal
	default:
		return KindText
	}
}

func parseableBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false":
		return true
	}
	return false
}

func parseableTime(v string) bool {
	for _, layout := range temporalLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

// FromRecords builds a typed table from a header row and raw string
// records. Column kinds are inferred here, once; records shorter than
// the header are padded with missing cells. This is the single entry
// point every loader funnels through, apart from parquet where the
// file schema already carries the types.
func FromRecords(header []string, records [][]string) *Table {
	t := &Table{Columns: make([]Column, len(header))}
	for j, name := range header {
		raws := make([]string, len(records))
		for i, rec := range records {
			if j < len(rec) {
				raws[i] = rec[j]
			}
		}
		kind := InferKind(raws)
		col := Column{Name: name, Kind: kind, Cells: make([]Cell, len(raws))}
		for i, raw := range raws {
			col.Cells[i] = parseCell(raw, kind)
		}
		t.Columns[j] = col
	}
	return t
}

func parseCell(raw string, kind Kind) Cell {
	if IsMissing(raw) {
		return Null()
	}
	v := strings.TrimSpace(raw)
	if kind == KindNumeric {
		num, ok := ParseNumber(v)
		if !ok {
			return Null()
		}
		return Cell{Raw: raw, Num: num}
	}
	return Cell{Raw: v}
}
