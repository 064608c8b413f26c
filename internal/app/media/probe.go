package media

import (
	"context"
	"encoding/json"
	"math"
	"os/exec"
	"strconv"
	"strings"

	apperrors "vidsum/internal/app/errors"
	"vidsum/internal/app/model"
)

// Prober inspects media files with ffprobe.
type Prober struct {
	ffprobePath string
}

// NewProber creates a Prober shelling out to the given ffprobe binary.
// Pass "ffprobe" to resolve it from PATH.
func NewProber(ffprobePath string) *Prober {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Prober{ffprobePath: ffprobePath}
}

// Duration returns the media duration in whole seconds.
func (p *Prober) Duration(ctx context.Context, filePath string) (int, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		filePath,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, apperrors.Wrapf(err, "ffprobe duration for %s", filePath)
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, apperrors.Wrap(err, "parse ffprobe duration")
	}
	return int(math.Round(durationFloat)), nil
}

// Probe returns the stream and format description of a media file.
func (p *Prober) Probe(ctx context.Context, filePath string) (*model.FFProbeOutput, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		filePath,
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, apperrors.Wrapf(err, "ffprobe %s", filePath)
	}

	return parseProbeOutput(output)
}

func parseProbeOutput(data []byte) (*model.FFProbeOutput, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(data, &probeOutput); err != nil {
		return nil, apperrors.Wrap(err, "parse ffprobe output")
	}
	return &probeOutput, nil
}
