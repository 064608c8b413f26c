package media

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"go.uber.org/zap"

	apperrors "vidsum/internal/app/errors"
	"vidsum/internal/app/util/files"
)

// Normalizer converts arbitrary input containers to the canonical MP4
// target. All codec work is delegated to the ffmpeg binary.
type Normalizer struct {
	ffmpegPath string
	logger     *zap.Logger
}

// NewNormalizer creates a Normalizer shelling out to the given ffmpeg
// binary. Pass "ffmpeg" to resolve it from PATH.
func NewNormalizer(ffmpegPath string, logger *zap.Logger) *Normalizer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Normalizer{
		ffmpegPath: ffmpegPath,
		logger:     logger,
	}
}

// Normalize re-encodes inputPath into a fresh temporary MP4 file
// (H.264 video, AAC audio) and returns its path. The input file is left
// in place. On failure no temporary file is left behind.
func (n *Normalizer) Normalize(ctx context.Context, inputPath string) (string, error) {
	outputPath, err := files.TempFileWithExt("mp4")
	if err != nil {
		return "", apperrors.Wrap(err, "create temporary mp4 file")
	}

	n.logger.Info("converting video to mp4",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
	)

	// -y because the temp file already exists on disk.
	cmd := exec.CommandContext(ctx, n.ffmpegPath,
		"-y",
		"-i", inputPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return "", apperrors.Wrapf(err, "FFmpeg error: %s", lastLine(stderr.String()))
	}

	n.logger.Info("mp4 conversion completed", zap.String("output", outputPath))
	return outputPath, nil
}

// lastLine trims ffmpeg's stderr down to its final non-empty line,
// which is where ffmpeg puts the actual failure reason.
func lastLine(s string) string {
	lines := bytes.Split(bytes.TrimSpace([]byte(s)), []byte("\n"))
	if len(lines) == 0 {
		return ""
	}
	return string(bytes.TrimSpace(lines[len(lines)-1]))
}
