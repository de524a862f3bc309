package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration. The zero-effort
// default (no environment, no file) is fully usable.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/tabscrub.log"`
}

// PathsConfig controls where output artifacts are written.
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"."`
}

// CleaningConfig holds the cleaning policy knobs. Changing them changes
// which columns are pruned and which values are flagged as outliers.
type CleaningConfig struct {
	// SparseThreshold is the missing-value fraction above which
	// (strictly) a column is dropped.
	SparseThreshold float64 `yaml:"sparse_threshold" envconfig:"SPARSE_THRESHOLD" default:"0.5" validate:"gte=0,lte=1"`
	// IQRMultiplier scales the interquartile range when deriving
	// outlier bounds.
	IQRMultiplier float64 `yaml:"iqr_multiplier" envconfig:"IQR_MULTIPLIER" default:"1.5" validate:"gt=0"`
}

// TracingConfig controls OpenTelemetry span export. Off by default.
type TracingConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED" default:"false"`
}

// Load builds the configuration: struct defaults, then an optional YAML
// file, then environment variables (TABSCRUB_ prefix) on top. The
// result is validated before use.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// envconfig applies the default tags even when no variables are set.
	if err := envconfig.Process("TABSCRUB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if err := applyFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		// Environment wins over the file.
		if err := envconfig.Process("TABSCRUB", &cfg); err != nil {
			return nil, fmt.Errorf("failed to re-apply env config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the validated default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Struct defaults always validate; reaching here is a bug.
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return cfg
}

// Validate checks field constraints with go-playground/validator.
func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

func applyFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
