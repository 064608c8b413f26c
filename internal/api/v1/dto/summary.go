package dto

import (
	"time"

	"vidsum/internal/api/errors"
	"vidsum/internal/app/jobs"
	"vidsum/internal/app/summarize"
	"vidsum/internal/app/transcribe"
)

// SummarizeTextRequest asks for a summary of raw text, skipping the
// media stages of the pipeline.
type SummarizeTextRequest struct {
	Text       string `json:"text" binding:"required"`
	Summarizer string `json:"summarizer,omitempty" binding:"omitempty,oneof=openai gemini"`
	MaxTokens  int    `json:"max_tokens,omitempty" binding:"omitempty,min=1,max=4096"`
}

// Validate performs domain-specific validation
func (r *SummarizeTextRequest) Validate() error {
	validationErrors := make(map[string]string)

	if len(r.Text) == 0 {
		validationErrors["text"] = "text is required"
	}
	if r.Summarizer != "" && r.Summarizer != summarize.ProviderOpenAI && r.Summarizer != summarize.ProviderGemini {
		validationErrors["summarizer"] = "invalid summarizer specified"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid summarize request", validationErrors)
	}
	return nil
}

// SummarizeTextResponse carries a synchronous text summary.
type SummarizeTextResponse struct {
	Summary string `json:"summary"`
}

// JobResponse represents a processing job in API responses.
type JobResponse struct {
	ID          string     `json:"id"`
	FileName    string     `json:"file_name"`
	Status      string     `json:"status"`
	Transcript  string     `json:"transcript,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	ErrorStage  string     `json:"error_stage,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// FromJob maps a job record to its API representation.
func FromJob(job jobs.Job) *JobResponse {
	return &JobResponse{
		ID:          job.ID,
		FileName:    job.FileName,
		Status:      string(job.Status),
		Transcript:  job.Transcript,
		Summary:     job.Summary,
		ErrorStage:  job.ErrorStage,
		Error:       job.Error,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
		CompletedAt: job.CompletedAt,
	}
}

// UploadOptions carries the per-request pipeline selections from an
// upload form.
type UploadOptions struct {
	Transcriber string
	Summarizer  string
	MaxTokens   int
}

// ValidTranscriber reports whether the transcriber selection names a
// known provider. Empty selects the default.
func (o UploadOptions) ValidTranscriber() bool {
	switch o.Transcriber {
	case "", transcribe.ProviderAssemblyAI, transcribe.ProviderWhisper:
		return true
	}
	return false
}

// ValidSummarizer reports whether the summarizer selection names a
// known provider. Empty selects the default.
func (o UploadOptions) ValidSummarizer() bool {
	switch o.Summarizer {
	case "", summarize.ProviderOpenAI, summarize.ProviderGemini:
		return true
	}
	return false
}
