package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tabscrub/internal/config"
	"tabscrub/internal/infrastructure"
	"tabscrub/internal/pipeline"
)

func main() {
	filePath := flag.String("file", "", "path to the dataset file (.csv, .xlsx, .xls, .json, .parquet)")
	name := flag.String("name", "", "dataset name used for output files (defaults to the input file name)")
	outDir := flag.String("out", "", "output directory for cleaned CSV files (defaults to config)")
	configFile := flag.String("config", "", "optional YAML config file")
	verbose := flag.Bool("verbose", false, "report per-step progress")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: tabscrub -file <dataset> [-name <dataset-name>] [-out <dir>]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := context.Background()

	providers, err := infrastructure.InitializeOTel(cfg.Tracing.Enabled, logger)
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer providers.Shutdown(ctx)

	datasetName := *name
	if datasetName == "" {
		base := filepath.Base(*filePath)
		datasetName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	logger.Info("Starting dataset cleaning",
		slog.String("file", *filePath),
		slog.String("dataset", datasetName),
		slog.String("output_dir", cfg.Paths.OutputDir))

	opts := []pipeline.Option{pipeline.WithTracer(pipeline.NewStageTracer(providers.Tracer))}
	if *verbose {
		opts = append(opts, pipeline.WithNotifier(pipeline.SlogNotifier{}))
	}

	p := pipeline.New(cfg, opts...)
	cleaned, err := p.Run(ctx, *filePath, datasetName)
	if err != nil {
		logger.Error("Cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Dataset cleaned",
		slog.Int("rows", cleaned.NumRows()),
		slog.Int("columns", cleaned.NumCols()))
}
