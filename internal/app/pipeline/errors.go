package pipeline

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline step an error originated from.
type Stage string

const (
	StageConversion    Stage = "conversion"
	StageTranscription Stage = "transcription"
	StageSummarization Stage = "summarization"
)

// StageError wraps a failure from a single pipeline step. A failing
// step aborts the remaining steps; the first StageError is the one the
// caller sees.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewConversionError wraps a media conversion failure.
func NewConversionError(err error) *StageError {
	return &StageError{Stage: StageConversion, Err: err}
}

// NewTranscriptionError wraps a speech-to-text failure.
func NewTranscriptionError(err error) *StageError {
	return &StageError{Stage: StageTranscription, Err: err}
}

// NewSummarizationError wraps a summarization failure.
func NewSummarizationError(err error) *StageError {
	return &StageError{Stage: StageSummarization, Err: err}
}

// FailedStage extracts the originating stage from an error chain.
// The second return is false when no StageError is present.
func FailedStage(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}
