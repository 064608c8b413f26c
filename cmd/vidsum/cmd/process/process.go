package process

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vidsum/internal/app"
	"vidsum/internal/app/converter"
	"vidsum/internal/app/export"
	"vidsum/internal/app/logger"
	"vidsum/internal/app/media"
	"vidsum/internal/app/pipeline"
	"vidsum/internal/app/summarize"
	"vidsum/internal/app/transcribe"
	"vidsum/internal/app/util/files"
	"vidsum/internal/config"
)

var (
	videoFile          string
	videoDir           string
	limit              int
	transcriberName    string
	summarizerName     string
	maxTokens          int
	exportPath         string
	noProgress         bool
	maxSummaryInputLen int
)

func init() {
	Cmd.Flags().StringVarP(&videoFile, "file", "f", "", "single video file to process")
	Cmd.Flags().StringVarP(&videoDir, "videoDir", "d", "", "directory of video files to process")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of files to process from the directory, 0 for all")
	Cmd.Flags().StringVarP(&transcriberName, "transcriber", "t", transcribe.ProviderAssemblyAI, "speech-to-text provider: assemblyai or whisper")
	Cmd.Flags().StringVarP(&summarizerName, "summarizer", "s", summarize.ProviderOpenAI, "summary provider: openai or gemini")
	Cmd.Flags().IntVar(&maxTokens, "maxTokens", summarize.DefaultMaxTokens, "summary token budget")
	Cmd.Flags().StringVarP(&exportPath, "export", "o", "", "write batch results to this xlsx file")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	Cmd.Flags().IntVar(&maxSummaryInputLen, "maxSummaryInput", 0, "truncate transcripts beyond this many bytes before summarizing, 0 to disable")

	Cmd.MarkFlagsOneRequired("file", "videoDir")
	Cmd.MarkFlagsMutuallyExclusive("file", "videoDir")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Transcribe and summarize video files from the command line",
	Long: `Transcribe and summarize video files from the command line

- With --file, process one video and print transcript and summary
- With --videoDir, process the accepted videos in the directory oldest
  first and optionally export the results to xlsx
- API keys come from the environment or a .env file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}

		zapLogger := logger.MustNewLogger(true)
		defer zapLogger.Sync()

		processor, err := app.NewCLIProcessor(*keys, transcriberName, summarizerName, zapLogger, pipeline.Options{
			MaxTokens:            maxTokens,
			MaxSummaryInputChars: maxSummaryInputLen,
		})
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		if videoFile != "" {
			return processSingle(ctx, processor, videoFile)
		}
		return processBatch(ctx, converter.NewConverter(processor, zapLogger))
	},
}

func processSingle(ctx context.Context, processor *pipeline.Processor, path string) error {
	if !files.IsAcceptedVideo(path) {
		return fmt.Errorf("unsupported file type %q, accepted extensions: %v", path, files.AcceptedExtensions)
	}
	if !files.IsMP4(path) {
		if err := media.NewDiagnostics().Check(); err != nil {
			return err
		}
	}

	// Best effort: show what ffprobe makes of the input up front. A
	// probe failure is not fatal; the pipeline surfaces real problems.
	if media.NewDiagnostics().CheckFFprobe() == nil {
		if info, err := media.NewProber("ffprobe").Probe(ctx, path); err == nil {
			fmt.Printf("Input: %s (%s, %ss)\n", path, info.Format.FormatName, info.Format.Duration)
		}
	}

	result, err := processor.Process(ctx, path)
	if err != nil {
		return err
	}

	fmt.Printf("Transcript:\n%s\n\nSummary:\n%s\n", result.Transcript, result.Summary)
	return nil
}

func processBatch(ctx context.Context, batch *converter.Converter) error {
	if err := media.NewDiagnostics().Check(); err != nil {
		return err
	}

	records, err := batch.Do(ctx, videoDir, limit, converter.ProgressConfig{
		Enabled: !noProgress,
		Writer:  os.Stderr,
	})
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range records {
		if r.Error != "" {
			failed++
		}
	}
	fmt.Printf("processed %d files, %d failed\n", len(records), failed)

	if exportPath != "" {
		if err := export.ToExcel(records, exportPath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", exportPath)
	}
	return nil
}
