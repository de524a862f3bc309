package loader

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"tabscrub/internal/dataset"
)

// readJSON parses a JSON array of flat objects. Column order follows
// the key order of the first object; keys that only appear in later
// objects are appended in sorted order, and objects missing a key get
// a missing cell for it.
func readJSON(path string) (*dataset.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("expected an array of objects: %w", err)
	}
	if len(rows) == 0 {
		return &dataset.Table{}, nil
	}

	header, err := firstObjectKeys(data)
	if err != nil {
		return nil, err
	}
	header = appendExtraKeys(header, rows)

	records := make([][]string, len(rows))
	for i, row := range rows {
		rec := make([]string, len(header))
		for j, key := range header {
			v, ok := row[key]
			if !ok {
				continue
			}
			rec[j] = formatJSONValue(v)
		}
		records[i] = rec
	}
	return dataset.FromRecords(header, records), nil
}

// firstObjectKeys walks the token stream of the first array element to
// recover its key order, which json.Unmarshal into a map discards.
func firstObjectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('[') {
		return nil, fmt.Errorf("expected a JSON array")
	}
	tok, err = dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("expected an object as the first array element")
	}

	var keys []string
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to scan object keys: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in object", tok)
		}
		keys = append(keys, key)

		// Consume the value, skipping past any nested structure.
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to scan value: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	if delim == json.Delim('{') || delim == json.Delim('[') {
		depth := 1
		for depth > 0 {
			tok, err = dec.Token()
			if err != nil {
				return fmt.Errorf("failed to scan nested value: %w", err)
			}
			switch tok {
			case json.Delim('{'), json.Delim('['):
				depth++
			case json.Delim('}'), json.Delim(']'):
				depth--
			}
		}
	}
	return nil
}

func appendExtraKeys(header []string, rows []map[string]any) []string {
	known := make(map[string]bool, len(header))
	for _, k := range header {
		known[k] = true
	}
	var extras []string
	for _, row := range rows {
		for k := range row {
			if !known[k] {
				known[k] = true
				extras = append(extras, k)
			}
		}
	}
	sort.Strings(extras)
	return append(header, extras...)
}

func formatJSONValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		// Nested objects/arrays are not tabular; keep their encoding
		// as an opaque text cell.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
