package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "vidsum/internal/app/errors"
)

func stubLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestDiagnostics_AllAvailable(t *testing.T) {
	d := &Diagnostics{lookPath: stubLookPath("ffmpeg", "ffprobe")}
	assert.NoError(t, d.Check())
}

func TestDiagnostics_FFmpegMissing(t *testing.T) {
	d := &Diagnostics{lookPath: stubLookPath("ffprobe")}
	assert.ErrorIs(t, d.CheckFFmpeg(), apperrors.ErrFFmpegNotFound)
	assert.ErrorIs(t, d.Check(), apperrors.ErrFFmpegNotFound)
}

func TestDiagnostics_FFprobeMissing(t *testing.T) {
	d := &Diagnostics{lookPath: stubLookPath("ffmpeg")}
	assert.NoError(t, d.CheckFFmpeg())
	assert.ErrorIs(t, d.Check(), apperrors.ErrFFprobeNotFound)
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single line", "moov atom not found", "moov atom not found"},
		{"multiline keeps last", "frame=1\nframe=2\nInvalid data found", "Invalid data found"},
		{"trailing newline", "Invalid data found\n\n", "Invalid data found"},
		{"trims whitespace", "frame=1\n  error here  \n", "error here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lastLine(tt.input))
		})
	}
}

func TestParseProbeOutput(t *testing.T) {
	raw := []byte(`{
		"streams": [
			{"codec_type": "video", "codec_name": "h264"},
			{"codec_type": "audio", "codec_name": "aac"}
		],
		"format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "12.480000"}
	}`)

	info, err := parseProbeOutput(raw)
	require.NoError(t, err)

	require.Len(t, info.Streams, 2)
	assert.Equal(t, "video", info.Streams[0].CodecType)
	assert.Equal(t, "h264", info.Streams[0].CodecName)
	assert.Equal(t, "aac", info.Streams[1].CodecName)
	assert.Equal(t, "mov,mp4,m4a,3gp,3g2,mj2", info.Format.FormatName)
	assert.Equal(t, "12.480000", info.Format.Duration)
}

func TestParseProbeOutput_Invalid(t *testing.T) {
	_, err := parseProbeOutput([]byte("not json"))
	assert.Error(t, err)
}

func TestNormalizer_BinaryNotFound(t *testing.T) {
	n := NewNormalizer("/nonexistent/ffmpeg", zap.NewNop())

	_, err := n.Normalize(context.Background(), "input.avi")
	require.Error(t, err)
}
