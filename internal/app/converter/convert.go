// Package converter runs the summary pipeline over a directory of
// video files for the CLI batch path.
package converter

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vidsum/internal/app/export"
	"vidsum/internal/app/pipeline"
	"vidsum/internal/app/util/files"
)

// Processor runs the pipeline for one video file.
type Processor interface {
	Process(ctx context.Context, videoPath string) (*pipeline.Result, error)
}

// Converter batch-processes the accepted video files of a directory.
type Converter struct {
	processor Processor
	logger    *zap.Logger
}

// NewConverter creates a batch converter around one pipeline processor.
// Files are processed sequentially; each upstream service call is
// single-flight anyway.
func NewConverter(processor Processor, logger *zap.Logger) *Converter {
	return &Converter{
		processor: processor,
		logger:    logger,
	}
}

// Do processes up to limit accepted video files from videoDir, oldest
// first, and returns one record per processed file. Per-file failures
// are recorded and do not stop the batch.
func (c *Converter) Do(ctx context.Context, videoDir string, limit int, progress ProgressConfig) ([]export.Record, error) {
	fileInfos, err := files.GetAllVideoFiles(videoDir)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(fileInfos) > limit {
		fileInfos = fileInfos[:limit]
	}

	pm := NewProgressManager(progress)
	bar := pm.CreateBar(len(fileInfos), "processing")

	records := make([]export.Record, 0, len(fileInfos))
	for _, file := range fileInfos {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		c.logger.Info("processing file", zap.String("file", file.Name))

		record := export.Record{
			FileName:    file.Name,
			ProcessedAt: time.Now(),
		}

		result, err := c.processor.Process(ctx, file.FullPath)
		if err != nil {
			stage, _ := pipeline.FailedStage(err)
			record.ErrorStage = string(stage)
			record.Error = err.Error()
			c.logger.Error("file processing failed",
				zap.String("file", file.Name),
				zap.String("stage", string(stage)),
				zap.Error(err),
			)
		} else {
			record.Transcript = result.Transcript
			record.Summary = result.Summary
		}

		records = append(records, record)
		bar.Increment()
	}

	pm.Wait()
	return records, nil
}
