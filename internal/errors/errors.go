// Package errors defines the pipeline error taxonomy. Every failure
// surfaced to the caller carries a stable error type so callers can
// branch with errors.As without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Is and As re-export the standard library helpers so callers only
// import one errors package.
var (
	Is = stderrors.Is
	As = stderrors.As
)

// ErrorType classifies a pipeline failure.
type ErrorType string

const (
	ErrTypePathNotFound      ErrorType = "PATH_NOT_FOUND"
	ErrTypeUnsupportedFormat ErrorType = "UNSUPPORTED_FORMAT"
	ErrTypeParsing           ErrorType = "PARSING"
	ErrTypeExport            ErrorType = "EXPORT"
)

// PipelineError is the error value returned by pipeline components.
// All errors are fatal to the run; there is no retry or partial-result
// recovery.
type PipelineError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// New creates a PipelineError with the given type and message.
func New(errType ErrorType, message string, cause error) *PipelineError {
	return &PipelineError{Type: errType, Message: message, Cause: cause}
}

// PathNotFound reports that the input path does not exist. The pipeline
// halts without writing any output files.
func PathNotFound(path string) *PipelineError {
	return New(ErrTypePathNotFound, fmt.Sprintf("input path does not exist: %s", path), nil)
}

// UnsupportedFormat reports an input extension outside the supported
// set, carrying the offending extension.
func UnsupportedFormat(ext string) *PipelineError {
	return New(ErrTypeUnsupportedFormat, fmt.Sprintf("unsupported file format: %q", ext), nil)
}

// Parsing wraps a parser failure for a given file.
func Parsing(path string, cause error) *PipelineError {
	return New(ErrTypeParsing, fmt.Sprintf("failed to parse %s", path), cause)
}

// Export wraps a failure while writing an output file.
func Export(path string, cause error) *PipelineError {
	return New(ErrTypeExport, fmt.Sprintf("failed to write %s", path), cause)
}

// IsType reports whether err is a PipelineError of the given type.
func IsType(err error, errType ErrorType) bool {
	var pe *PipelineError
	return As(err, &pe) && pe.Type == errType
}
