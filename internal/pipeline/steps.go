package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"tabscrub/internal/cleaning"
	"tabscrub/internal/dataset"
	"tabscrub/internal/errors"
	"tabscrub/internal/exporter"
	"tabscrub/internal/infrastructure"
)

// dedupeStep removes exact-duplicate rows and persists them as a side
// table before any later stage runs. The duplicates file, once written,
// is a correct artifact of the dedup pass regardless of later failures.
type dedupeStep struct {
	writer      *exporter.CSVWriter
	datasetName string
}

func (s *dedupeStep) ID() string   { return "deduplicate" }
func (s *dedupeStep) Name() string { return "Duplicate removal" }

func (s *dedupeStep) Execute(ctx context.Context, t *dataset.Table) (*dataset.Table, error) {
	clean, dupes := cleaning.Deduplicate(t)
	if dupes == nil {
		return clean, nil
	}

	fileName := fmt.Sprintf("%s_duplicates.csv", s.datasetName)
	if err := s.writer.WriteTable(fileName, dupes); err != nil {
		return nil, errors.Export(fileName, err)
	}
	infrastructure.LoggerFromContext(ctx).Info("persisted duplicate rows",
		slog.String("file", fileName),
		slog.Int("duplicates", dupes.NumRows()))
	return clean, nil
}

// missingStep mean-fills numeric columns and drops rows that are
// missing in non-numeric columns.
type missingStep struct{}

func (missingStep) ID() string   { return "missing_values" }
func (missingStep) Name() string { return "Missing-value handling" }

func (missingStep) Execute(_ context.Context, t *dataset.Table) (*dataset.Table, error) {
	return cleaning.FillMissing(t), nil
}

// pruneStep drops columns whose missing fraction exceeds the threshold.
type pruneStep struct {
	threshold float64
}

func (s *pruneStep) ID() string   { return "prune_columns" }
func (s *pruneStep) Name() string { return "Sparse-column pruning" }

func (s *pruneStep) Execute(_ context.Context, t *dataset.Table) (*dataset.Table, error) {
	return cleaning.PruneSparseColumns(t, s.threshold), nil
}

// namesStep normalizes column labels.
type namesStep struct{}

func (namesStep) ID() string   { return "standardize_names" }
func (namesStep) Name() string { return "Column-name standardization" }

func (namesStep) Execute(_ context.Context, t *dataset.Table) (*dataset.Table, error) {
	return cleaning.StandardizeNames(t), nil
}

// outlierStep nulls numeric values outside the IQR-derived bounds.
type outlierStep struct {
	multiplier float64
}

func (s *outlierStep) ID() string   { return "flag_outliers" }
func (s *outlierStep) Name() string { return "Outlier flagging" }

func (s *outlierStep) Execute(_ context.Context, t *dataset.Table) (*dataset.Table, error) {
	return cleaning.FlagOutliers(t, s.multiplier), nil
}
