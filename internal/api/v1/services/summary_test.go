package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "vidsum/internal/api/errors"
	"vidsum/internal/api/v1/dto"
	"vidsum/internal/app/jobs"
	"vidsum/internal/app/pipeline"
	"vidsum/internal/app/summarize"
	"vidsum/internal/app/transcribe"
	"vidsum/internal/config"
)

type fakeTranscriber struct {
	text string
	err  error
	key  string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
	key     string
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ string, _ int) (string, error) {
	return f.summary, f.err
}

type noopNormalizer struct{}

func (noopNormalizer) Normalize(_ context.Context, inputPath string) (string, error) {
	return inputPath, nil
}

func fakeFactory(transcriber *fakeTranscriber, summarizer *fakeSummarizer) ProviderFactory {
	return ProviderFactory{
		NewTranscriber: func(_ string, creds Credentials) (transcribe.Transcriber, error) {
			transcriber.key = creds.AssemblyAI
			return transcriber, nil
		},
		NewSummarizer: func(_ string, creds Credentials) (summarize.Summarizer, error) {
			summarizer.key = creds.OpenAI
			return summarizer, nil
		},
	}
}

func newTestService(store *jobs.Store, factory ProviderFactory, envKeys config.APIKeys) SummaryService {
	return NewSummaryService(store, noopNormalizer{}, factory, envKeys, zap.NewNop(), nil, pipeline.Options{})
}

func writeUpload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.mp4")
	require.NoError(t, os.WriteFile(path, []byte("fake video bytes"), 0o644))
	return path
}

func waitForJob(t *testing.T, service SummaryService, id string, status jobs.Status) *dto.JobResponse {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		job, err := service.GetJob(context.Background(), id)
		require.NoError(t, err)
		if job.Status == string(status) {
			return job
		}
		select {
		case <-deadline:
			t.Fatalf("job %s never reached %s, last status %s", id, status, job.Status)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCreateFromUpload_Completes(t *testing.T) {
	store := jobs.NewStore()
	service := newTestService(store, fakeFactory(
		&fakeTranscriber{text: "hello world"},
		&fakeSummarizer{summary: "a greeting"},
	), config.APIKeys{})

	uploadPath := writeUpload(t)
	job, err := service.CreateFromUpload(context.Background(), uploadPath, "talk.mp4", Credentials{}, dto.UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, string(jobs.StatusPending), job.Status)

	done := waitForJob(t, service, job.ID, jobs.StatusCompleted)
	assert.Equal(t, "hello world", done.Transcript)
	assert.Equal(t, "a greeting", done.Summary)
	require.NotNil(t, done.CompletedAt)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(uploadPath)
		return os.IsNotExist(err)
	}, 2*time.Second, 5*time.Millisecond, "upload must be removed after the run")
}

func TestCreateFromUpload_FailureRecordsStage(t *testing.T) {
	store := jobs.NewStore()
	service := newTestService(store, fakeFactory(
		&fakeTranscriber{err: errors.New("quota exceeded")},
		&fakeSummarizer{summary: "unused"},
	), config.APIKeys{})

	uploadPath := writeUpload(t)
	job, err := service.CreateFromUpload(context.Background(), uploadPath, "talk.mp4", Credentials{}, dto.UploadOptions{})
	require.NoError(t, err)

	failed := waitForJob(t, service, job.ID, jobs.StatusFailed)
	assert.Equal(t, "transcription", failed.ErrorStage)
	assert.Contains(t, failed.Error, "quota exceeded")
	assert.Empty(t, failed.Transcript)
	assert.Empty(t, failed.Summary)
}

func TestCreateFromUpload_FactoryErrorIsSynchronous(t *testing.T) {
	store := jobs.NewStore()
	factory := ProviderFactory{
		NewTranscriber: func(string, Credentials) (transcribe.Transcriber, error) {
			return nil, apierrors.NewValidationError("Missing credentials", nil)
		},
		NewSummarizer: func(string, Credentials) (summarize.Summarizer, error) {
			return &fakeSummarizer{}, nil
		},
	}
	service := newTestService(store, factory, config.APIKeys{})

	_, err := service.CreateFromUpload(context.Background(), writeUpload(t), "talk.mp4", Credentials{}, dto.UploadOptions{})
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindValidation, apiErr.Kind)
	assert.Zero(t, store.Len(), "no job for a rejected request")
}

func TestCredentials_EnvFallback(t *testing.T) {
	transcriber := &fakeTranscriber{text: "hello"}
	summarizer := &fakeSummarizer{summary: "hi"}
	service := newTestService(jobs.NewStore(), fakeFactory(transcriber, summarizer), config.APIKeys{
		OpenAI:     "sk-env-key",
		AssemblyAI: "env-assemblyai-key",
	})

	_, err := service.SummarizeText(context.Background(), Credentials{}, &dto.SummarizeTextRequest{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "sk-env-key", summarizer.key, "env key fills the gap")

	_, err = service.SummarizeText(context.Background(), Credentials{OpenAI: "sk-request-key"}, &dto.SummarizeTextRequest{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "sk-request-key", summarizer.key, "request key wins over env")
}

func TestSummarizeText_ServiceFailure(t *testing.T) {
	service := newTestService(jobs.NewStore(), fakeFactory(
		&fakeTranscriber{},
		&fakeSummarizer{err: errors.New("model overloaded")},
	), config.APIKeys{})

	_, err := service.SummarizeText(context.Background(), Credentials{}, &dto.SummarizeTextRequest{Text: "hi"})
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindServiceUnavailable, apiErr.Kind)
}

func TestDeleteJob_NotFound(t *testing.T) {
	service := newTestService(jobs.NewStore(), DefaultProviderFactory(), config.APIKeys{})

	err := service.DeleteJob(context.Background(), "nope")
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}

func TestDefaultProviderFactory_MissingCredentials(t *testing.T) {
	factory := DefaultProviderFactory()

	_, err := factory.NewTranscriber("", Credentials{})
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindValidation, apiErr.Kind)

	_, err = factory.NewSummarizer("gemini", Credentials{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindValidation, apiErr.Kind)
}

func TestDefaultProviderFactory_UnknownProvider(t *testing.T) {
	factory := DefaultProviderFactory()

	_, err := factory.NewTranscriber("shouting", Credentials{AssemblyAI: "env-assemblyai-key"})
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindValidation, apiErr.Kind)
}
