package loader

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"tabscrub/internal/dataset"
	"tabscrub/internal/errors"
)

// Load reads a tabular dataset file and returns a typed table. The
// format is chosen from the path's extension, case-insensitively:
// .csv, .xlsx, .xls, .json and .parquet are supported; anything else
// fails with an UNSUPPORTED_FORMAT error carrying the extension.
func Load(ctx context.Context, path string) (*dataset.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		t   *dataset.Table
		err error
	)
	switch ext {
	case ".csv":
		t, err = readCSV(path)
	case ".xlsx":
		t, err = readXLSX(path)
	case ".xls":
		t, err = readXLS(path)
	case ".json":
		t, err = readJSON(path)
	case ".parquet":
		t, err = readParquet(ctx, path)
	default:
		return nil, errors.UnsupportedFormat(ext)
	}
	if err != nil {
		return nil, errors.Parsing(path, err)
	}

	slog.Info("loaded dataset",
		slog.String("path", path),
		slog.String("format", ext),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()))

	return t, nil
}
