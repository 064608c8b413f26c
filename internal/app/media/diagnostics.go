package media

import (
	"os/exec"

	apperrors "vidsum/internal/app/errors"
)

// Diagnostics reports availability of the external media binaries the
// normalizer and prober shell out to.
type Diagnostics struct {
	lookPath func(string) (string, error)
}

// NewDiagnostics builds a Diagnostics using the real PATH lookup.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{lookPath: exec.LookPath}
}

// CheckFFmpeg verifies the ffmpeg binary is resolvable.
func (d *Diagnostics) CheckFFmpeg() error {
	if _, err := d.lookPath("ffmpeg"); err != nil {
		return apperrors.ErrFFmpegNotFound
	}
	return nil
}

// CheckFFprobe verifies the ffprobe binary is resolvable.
func (d *Diagnostics) CheckFFprobe() error {
	if _, err := d.lookPath("ffprobe"); err != nil {
		return apperrors.ErrFFprobeNotFound
	}
	return nil
}

// Check verifies all media binaries at once, returning the first
// failure.
func (d *Diagnostics) Check() error {
	if err := d.CheckFFmpeg(); err != nil {
		return err
	}
	return d.CheckFFprobe()
}
