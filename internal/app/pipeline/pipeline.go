// Package pipeline sequences the normalize, transcribe and summarize
// steps for one video and owns the temporary files the run creates.
package pipeline

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"vidsum/internal/app/metrics"
	"vidsum/internal/app/summarize"
	"vidsum/internal/app/transcribe"
	"vidsum/internal/app/util/files"
)

// Normalizer converts an input media file to the canonical MP4 target,
// returning the path of the new file.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) (string, error)
}

// Result aggregates the outputs of one successful pipeline run.
type Result struct {
	Transcript string
	Summary    string
}

// Options tunes a Processor beyond its collaborators.
type Options struct {
	// MaxTokens is the summary token budget passed to the summarizer.
	MaxTokens int
	// MaxSummaryInputChars caps the transcript length handed to the
	// summarizer. Longer transcripts are truncated at a rune boundary.
	// Zero means no cap.
	MaxSummaryInputChars int
}

// Processor runs the linear pipeline
// Start -> (Normalize?) -> Transcribe -> Summarize -> Done.
// One Processor instance serves one run at a time; concurrent sessions
// each construct their own.
type Processor struct {
	normalizer  Normalizer
	transcriber transcribe.Transcriber
	summarizer  summarize.Summarizer
	logger      *zap.Logger
	metrics     *metrics.PipelineMetrics
	opts        Options
}

// NewProcessor creates a Processor from its collaborators. metrics may
// be nil.
func NewProcessor(
	normalizer Normalizer,
	transcriber transcribe.Transcriber,
	summarizer summarize.Summarizer,
	logger *zap.Logger,
	m *metrics.PipelineMetrics,
	opts Options,
) *Processor {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = summarize.DefaultMaxTokens
	}
	return &Processor{
		normalizer:  normalizer,
		transcriber: transcriber,
		summarizer:  summarizer,
		logger:      logger,
		metrics:     m,
		opts:        opts,
	}
}

// Process runs the full pipeline for one video file. Temporary files
// created during the run are deleted on every exit path. A failure at
// any step aborts the remaining steps and discards partial output.
func (p *Processor) Process(ctx context.Context, videoPath string) (*Result, error) {
	p.metrics.RunStarted()

	run := newTempTracker(p.logger)
	defer run.cleanup()

	mediaPath := videoPath
	if !files.IsMP4(videoPath) {
		p.logger.Info("input is not mp4, normalizing", zap.String("path", videoPath))

		start := time.Now()
		normalizedPath, err := p.normalizer.Normalize(ctx, videoPath)
		p.metrics.ObserveStage(string(StageConversion), time.Since(start))
		if err != nil {
			p.metrics.RunFailed(string(StageConversion))
			return nil, NewConversionError(err)
		}
		run.track(normalizedPath)
		mediaPath = normalizedPath
	}

	p.logger.Info("transcribing video", zap.String("path", mediaPath))
	start := time.Now()
	transcript, err := p.transcriber.Transcribe(ctx, mediaPath)
	p.metrics.ObserveStage(string(StageTranscription), time.Since(start))
	if err != nil {
		p.metrics.RunFailed(string(StageTranscription))
		return nil, NewTranscriptionError(err)
	}

	input := transcript
	if p.opts.MaxSummaryInputChars > 0 && len(input) > p.opts.MaxSummaryInputChars {
		input = truncateRunes(input, p.opts.MaxSummaryInputChars)
		p.logger.Warn("transcript exceeds summarizer input budget, truncating",
			zap.Int("transcript_bytes", len(transcript)),
			zap.Int("budget_bytes", p.opts.MaxSummaryInputChars),
		)
	}

	p.logger.Info("generating summary", zap.Int("transcript_bytes", len(input)))
	start = time.Now()
	summary, err := p.summarizer.Summarize(ctx, input, p.opts.MaxTokens)
	p.metrics.ObserveStage(string(StageSummarization), time.Since(start))
	if err != nil {
		p.metrics.RunFailed(string(StageSummarization))
		return nil, NewSummarizationError(err)
	}

	p.metrics.RunSucceeded()
	return &Result{
		Transcript: transcript,
		Summary:    summary,
	}, nil
}

// truncateRunes cuts s down to at most max bytes without splitting a
// multi-byte rune. Only a trailing partial rune is dropped; invalid
// bytes earlier in the text pass through untouched.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for i := 0; i < utf8.UTFMax-1 && len(cut) > 0; i++ {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size != 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}
