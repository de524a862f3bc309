package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"

	"tabscrub/internal/config"
	"tabscrub/internal/dataset"
	"tabscrub/internal/errors"
	"tabscrub/internal/exporter"
	"tabscrub/internal/infrastructure"
	"tabscrub/internal/loader"
)

// Pipeline sequences the cleaning stages over a single dataset file.
// Control flow is strictly linear: load, deduplicate (side file),
// missing values, sparse-column pruning, name standardization, outlier
// flagging, final CSV export. A failing stage terminates the run.
type Pipeline struct {
	cfg      *config.Config
	writer   *exporter.CSVWriter
	tracer   *StageTracer
	notifier Notifier
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithNotifier installs a progress notifier (cosmetic; the default
// discards all callbacks).
func WithNotifier(n Notifier) Option {
	return func(p *Pipeline) { p.notifier = n }
}

// WithTracer installs a stage tracer. Without one, spans go to a noop
// tracer.
func WithTracer(t *StageTracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// New creates a pipeline from the given configuration.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:      cfg,
		writer:   exporter.NewCSVWriter(cfg.Paths.OutputDir),
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tracer == nil {
		p.tracer = NewStageTracer(noop.NewTracerProvider().Tracer("tabscrub"))
	}
	return p
}

// Run executes the full cleaning pass and returns the cleaned table.
// An input path that does not exist is reported and nothing is written;
// any other failure aborts the run with no retry.
func (p *Pipeline) Run(ctx context.Context, filePath, datasetName string) (*dataset.Table, error) {
	ctx = infrastructure.WithRunID(ctx, uuid.NewString())
	logger := infrastructure.LoggerFromContext(ctx)

	if _, err := os.Stat(filePath); err != nil {
		logger.Error("input path does not exist, nothing to clean",
			slog.String("path", filePath))
		return nil, errors.PathNotFound(filePath)
	}

	ctx, span := p.tracer.TraceRun(ctx, datasetName, filePath)
	t, err := p.execute(ctx, filePath, datasetName)
	EndStep(span, err)
	return t, err
}

func (p *Pipeline) execute(ctx context.Context, filePath, datasetName string) (*dataset.Table, error) {
	logger := infrastructure.LoggerFromContext(ctx)

	t, err := loader.Load(ctx, filePath)
	if err != nil {
		return nil, err
	}

	for _, step := range p.steps(datasetName) {
		state := NewStepState(step.ID(), step.Name())
		state.Start()
		p.notifier.StepStarted(ctx, step.Name())

		stepCtx, span := p.tracer.TraceStep(ctx, step.ID())
		t, err = step.Execute(stepCtx, t)
		EndStep(span, err)
		if err != nil {
			state.Fail(err)
			logger.Error("pipeline step failed",
				slog.String("step", step.ID()),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("step %s failed: %w", step.ID(), err)
		}
		state.Complete()

		p.notifier.StepCompleted(ctx, step.Name(), state.Duration(), t.NumRows(), t.NumCols())
		logger.Debug("pipeline step completed",
			slog.String("step", step.ID()),
			slog.Duration("duration", state.Duration()),
			slog.Int("rows", t.NumRows()),
			slog.Int("columns", t.NumCols()))
	}

	fileName := fmt.Sprintf("%s_clean_data.csv", datasetName)
	if err := p.writer.WriteTable(fileName, t); err != nil {
		return nil, errors.Export(fileName, err)
	}

	logger.Info("cleaning complete",
		slog.String("dataset", datasetName),
		slog.String("output", fileName),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()))

	return t, nil
}

// steps returns the cleaning stages in their fixed execution order.
func (p *Pipeline) steps(datasetName string) []Step {
	return []Step{
		&dedupeStep{writer: p.writer, datasetName: datasetName},
		missingStep{},
		&pruneStep{threshold: p.cfg.Cleaning.SparseThreshold},
		namesStep{},
		&outlierStep{multiplier: p.cfg.Cleaning.IQRMultiplier},
	}
}
