package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabscrub/internal/config"
	"tabscrub/internal/errors"
)

func testConfig(outputDir string) *config.Config {
	return &config.Config{
		Paths:    config.PathsConfig{OutputDir: outputDir},
		Cleaning: config.CleaningConfig{SparseThreshold: 0.5, IQRMultiplier: 1.5},
	}
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "input.csv",
		" Customer ID ,Score\na,1\nb,2\nc,3\nd,\nb,2\ne,100\n")

	p := New(testConfig(dir), WithNotifier(SlogNotifier{}))
	tbl, err := p.Run(context.Background(), input, "orders")
	require.NoError(t, err)
	require.NotNil(t, tbl)

	// Duplicates side file: written before name standardization, so it
	// keeps the original header.
	dupes, err := os.ReadFile(filepath.Join(dir, "orders_duplicates.csv"))
	require.NoError(t, err)
	assert.Equal(t, " Customer ID ,Score\nb,2\n", string(dupes))

	// Clean file: dedup kept 5 rows; the missing score was mean-filled
	// with 26.5 (mean of [1,2,3,100]); 100 fell outside the IQR bounds
	// [-34.75, 63.25] and was nulled, not dropped.
	clean, err := os.ReadFile(filepath.Join(dir, "orders_clean_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "customer_id,score\na,1\nb,2\nc,3\nd,26.5\ne,\n", string(clean))

	// The returned table matches the exported artifact.
	assert.Equal(t, []string{"customer_id", "score"}, tbl.Header())
	assert.Equal(t, 5, tbl.NumRows())
	assert.True(t, tbl.Columns[1].Cells[4].Null)
}

func TestRunPathNotFound(t *testing.T) {
	dir := t.TempDir()

	p := New(testConfig(dir))
	tbl, err := p.Run(context.Background(), "/nonexistent/file.csv", "missing")

	require.Error(t, err)
	assert.Nil(t, tbl)
	assert.True(t, errors.IsType(err, errors.ErrTypePathNotFound))

	// No output files were created.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "input.xml", "<not><tabular/></not>")

	p := New(testConfig(dir))
	_, err := p.Run(context.Background(), input, "bad")

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeUnsupportedFormat))

	_, statErr := os.Stat(filepath.Join(dir, "bad_clean_data.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunNoDuplicatesNoSideFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "input.csv", "a,b\n1,x\n2,y\n")

	p := New(testConfig(dir))
	_, err := p.Run(context.Background(), input, "unique")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "unique_duplicates.csv"))
	assert.True(t, os.IsNotExist(statErr))

	_, statErr = os.Stat(filepath.Join(dir, "unique_clean_data.csv"))
	assert.NoError(t, statErr)
}

func TestRunAlwaysWritesCSVRegardlessOfInputFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "input.json", `[{"a": 1}, {"a": 2}]`)

	p := New(testConfig(dir))
	_, err := p.Run(context.Background(), input, "fromjson")
	require.NoError(t, err)

	clean, err := os.ReadFile(filepath.Join(dir, "fromjson_clean_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n2\n", string(clean))
}

func TestStepStateLifecycle(t *testing.T) {
	state := NewStepState("deduplicate", "Duplicate removal")
	assert.Equal(t, StepStatusPending, state.Status)
	assert.Zero(t, state.Duration())

	state.Start()
	assert.Equal(t, StepStatusActive, state.Status)

	state.Complete()
	assert.Equal(t, StepStatusCompleted, state.Status)
	assert.GreaterOrEqual(t, state.Duration(), time.Duration(0))
}
