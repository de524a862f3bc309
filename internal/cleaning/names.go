package cleaning

import (
	"strings"

	"tabscrub/internal/dataset"
)

// StandardizeNames normalizes every column label: leading/trailing
// whitespace stripped, internal spaces replaced with underscores,
// lower-cased. Names that collide after normalization are kept as
// given; no deduplication and no error. Idempotent.
func StandardizeNames(t *dataset.Table) *dataset.Table {
	for j := range t.Columns {
		t.Columns[j].Name = standardizeName(t.Columns[j].Name)
	}
	return t
}

func standardizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}
