package pipeline

import (
	"context"
	"sync"
	"time"

	"tabscrub/internal/dataset"
)

// Step is a single cleaning stage. A step consumes the table it
// receives and returns the table for the next step; ownership transfers
// on return and no step retains a reference afterwards.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() string

	// Name returns the human-readable name for this step.
	Name() string

	// Execute runs the step against the table it exclusively owns.
	Execute(ctx context.Context, t *dataset.Table) (*dataset.Table, error)
}

// StepStatus represents the current status of a step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// StepState tracks the runtime state of one step execution.
type StepState struct {
	mu        sync.Mutex
	ID        string
	Name      string
	Status    StepStatus
	StartTime time.Time
	EndTime   time.Time
	Err       error
}

// NewStepState creates a pending state for the given step.
func NewStepState(id, name string) *StepState {
	return &StepState{ID: id, Name: name, Status: StepStatusPending}
}

// Start marks the step as active and records the start time.
func (s *StepState) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StartTime = time.Now()
	s.Status = StepStatusActive
}

// Complete marks the step as completed and records the end time.
func (s *StepState) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EndTime = time.Now()
	s.Status = StepStatusCompleted
}

// Fail marks the step as failed with the given error.
func (s *StepState) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EndTime = time.Now()
	s.Status = StepStatusFailed
	s.Err = err
}

// Duration returns how long the step ran.
func (s *StepState) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
