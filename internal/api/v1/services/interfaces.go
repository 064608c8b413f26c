package services

import (
	"context"

	"vidsum/internal/api/v1/dto"
)

// Credentials holds the API keys for one request. Keys never outlive
// the request's pipeline run and are never logged or persisted.
type Credentials struct {
	OpenAI     string
	AssemblyAI string
	Gemini     string
}

// SummaryService drives video processing jobs and text summaries.
type SummaryService interface {
	// CreateFromUpload starts an async pipeline run for a saved upload
	// and returns the pending job. The service owns uploadPath from
	// this point and removes it when the run ends.
	CreateFromUpload(ctx context.Context, uploadPath, fileName string, creds Credentials, opts dto.UploadOptions) (*dto.JobResponse, error)

	// GetJob returns the current state of a job.
	GetJob(ctx context.Context, id string) (*dto.JobResponse, error)

	// DeleteJob drops a job from memory.
	DeleteJob(ctx context.Context, id string) error

	// SummarizeText synchronously summarizes raw text.
	SummarizeText(ctx context.Context, creds Credentials, req *dto.SummarizeTextRequest) (*dto.SummarizeTextResponse, error)
}
