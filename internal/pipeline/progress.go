package pipeline

import (
	"context"
	"log/slog"
	"time"

	"tabscrub/internal/infrastructure"
)

// Notifier receives cosmetic progress callbacks during a run. It is a
// swappable collaborator with no effect on cleaning semantics; the
// default is a no-op.
type Notifier interface {
	StepStarted(ctx context.Context, stepName string)
	StepCompleted(ctx context.Context, stepName string, d time.Duration, rows, cols int)
}

// NopNotifier discards all progress callbacks.
type NopNotifier struct{}

func (NopNotifier) StepStarted(context.Context, string) {}

func (NopNotifier) StepCompleted(context.Context, string, time.Duration, int, int) {}

// SlogNotifier reports progress through the structured logger.
type SlogNotifier struct{}

func (SlogNotifier) StepStarted(ctx context.Context, stepName string) {
	infrastructure.LoggerFromContext(ctx).Info("step started",
		slog.String("step", stepName))
}

func (SlogNotifier) StepCompleted(ctx context.Context, stepName string, d time.Duration, rows, cols int) {
	infrastructure.LoggerFromContext(ctx).Info("step completed",
		slog.String("step", stepName),
		slog.Duration("duration", d),
		slog.Int("rows", rows),
		slog.Int("columns", cols))
}
