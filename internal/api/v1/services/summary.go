package services

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	apierrors "vidsum/internal/api/errors"
	"vidsum/internal/api/v1/dto"
	"vidsum/internal/app/jobs"
	"vidsum/internal/app/metrics"
	"vidsum/internal/app/pipeline"
	"vidsum/internal/app/summarize"
	"vidsum/internal/config"
)

// SummaryServiceImpl implements SummaryService. Each upload gets its
// own pipeline.Processor built from that request's credentials, so no
// client state is shared between sessions.
type SummaryServiceImpl struct {
	store      *jobs.Store
	normalizer pipeline.Normalizer
	factory    ProviderFactory
	envKeys    config.APIKeys
	logger     *zap.Logger
	metrics    *metrics.PipelineMetrics
	opts       pipeline.Options
}

// NewSummaryService creates a SummaryService. envKeys act as fallback
// credentials for requests that omit key headers; metrics may be nil.
func NewSummaryService(
	store *jobs.Store,
	normalizer pipeline.Normalizer,
	factory ProviderFactory,
	envKeys config.APIKeys,
	logger *zap.Logger,
	m *metrics.PipelineMetrics,
	opts pipeline.Options,
) SummaryService {
	return &SummaryServiceImpl{
		store:      store,
		normalizer: normalizer,
		factory:    factory,
		envKeys:    envKeys,
		logger:     logger,
		metrics:    m,
		opts:       opts,
	}
}

// CreateFromUpload builds the per-run pipeline eagerly so missing
// credentials or an unknown provider fail the request synchronously,
// then runs the pipeline in the background.
func (s *SummaryServiceImpl) CreateFromUpload(ctx context.Context, uploadPath, fileName string, creds Credentials, opts dto.UploadOptions) (*dto.JobResponse, error) {
	creds = s.withFallback(creds)

	transcriber, err := s.factory.NewTranscriber(opts.Transcriber, creds)
	if err != nil {
		return nil, err
	}
	summarizer, err := s.factory.NewSummarizer(opts.Summarizer, creds)
	if err != nil {
		return nil, err
	}

	pipelineOpts := s.opts
	if opts.MaxTokens > 0 {
		pipelineOpts.MaxTokens = opts.MaxTokens
	}

	processor := pipeline.NewProcessor(
		s.normalizer,
		transcriber,
		summarizer,
		s.logger,
		s.metrics,
		pipelineOpts,
	)

	job := s.store.Create(fileName)
	go s.run(job.ID, uploadPath, processor)

	return dto.FromJob(job), nil
}

// run executes one pipeline run in the background. The uploaded file is
// removed on every exit path.
func (s *SummaryServiceImpl) run(jobID, uploadPath string, processor *pipeline.Processor) {
	defer func() {
		if err := os.Remove(uploadPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove uploaded file",
				zap.String("path", uploadPath),
				zap.Error(err),
			)
		}
	}()

	if err := s.store.MarkProcessing(jobID); err != nil {
		s.logger.Warn("job vanished before processing", zap.String("job_id", jobID))
		return
	}

	result, err := processor.Process(context.Background(), uploadPath)
	if err != nil {
		stage, _ := pipeline.FailedStage(err)
		s.logger.Error("pipeline run failed",
			zap.String("job_id", jobID),
			zap.String("stage", string(stage)),
			zap.Error(err),
		)
		_ = s.store.Fail(jobID, string(stage), err.Error())
		return
	}

	_ = s.store.Complete(jobID, result.Transcript, result.Summary)
	s.logger.Info("pipeline run completed", zap.String("job_id", jobID))
}

// GetJob returns the current state of a job.
func (s *SummaryServiceImpl) GetJob(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			return nil, apierrors.NewNotFoundError("job")
		}
		return nil, apierrors.NewInternalError("Failed to load job")
	}
	return dto.FromJob(job), nil
}

// DeleteJob drops a job from memory.
func (s *SummaryServiceImpl) DeleteJob(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			return apierrors.NewNotFoundError("job")
		}
		return apierrors.NewInternalError("Failed to delete job")
	}
	return nil
}

// SummarizeText synchronously summarizes raw text with the selected
// provider.
func (s *SummaryServiceImpl) SummarizeText(ctx context.Context, creds Credentials, req *dto.SummarizeTextRequest) (*dto.SummarizeTextResponse, error) {
	creds = s.withFallback(creds)

	summarizer, err := s.factory.NewSummarizer(req.Summarizer, creds)
	if err != nil {
		return nil, err
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = summarize.DefaultMaxTokens
	}

	summary, err := summarizer.Summarize(ctx, req.Text, maxTokens)
	if err != nil {
		return nil, apierrors.NewServiceUnavailableError("Summarization failed: " + err.Error())
	}

	return &dto.SummarizeTextResponse{Summary: summary}, nil
}

func (s *SummaryServiceImpl) withFallback(creds Credentials) Credentials {
	if creds.OpenAI == "" {
		creds.OpenAI = s.envKeys.OpenAI
	}
	if creds.AssemblyAI == "" {
		creds.AssemblyAI = s.envKeys.AssemblyAI
	}
	if creds.Gemini == "" {
		creds.Gemini = s.envKeys.Gemini
	}
	return creds
}
