package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Cleaning.SparseThreshold)
	assert.Equal(t, 1.5, cfg.Cleaning.IQRMultiplier)
	assert.Equal(t, ".", cfg.Paths.OutputDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabscrub.yaml")
	content := []byte("cleaning:\n  sparse_threshold: 0.8\n  iqr_multiplier: 3\npaths:\n  output_dir: out\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Cleaning.SparseThreshold)
	assert.Equal(t, 3.0, cfg.Cleaning.IQRMultiplier)
	assert.Equal(t, "out", cfg.Paths.OutputDir)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabscrub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cleaning:\n  sparse_threshold: 0.8\n"), 0644))

	t.Setenv("TABSCRUB_CLEANING_SPARSE_THRESHOLD", "0.25")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Cleaning.SparseThreshold)
}

func TestValidationRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
	}{
		{
			name:   "sparse threshold above one",
			mutate: func(c *Config) { c.Cleaning.SparseThreshold = 1.5 },
		},
		{
			name:   "negative iqr multiplier",
			mutate: func(c *Config) { c.Cleaning.IQRMultiplier = -1 },
		},
		{
			name:   "unknown log output",
			mutate: func(c *Config) { c.Logging.Output = "syslog" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := Load("/nonexistent/tabscrub.yaml")
	assert.Error(t, err)
}
