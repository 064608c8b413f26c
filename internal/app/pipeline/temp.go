package pipeline

import (
	"os"

	"go.uber.org/zap"
)

// tempTracker owns the temporary files created during one pipeline run.
// One run is a single sequential call chain, so no locking is needed.
type tempTracker struct {
	paths  []string
	logger *zap.Logger
}

func newTempTracker(logger *zap.Logger) *tempTracker {
	return &tempTracker{logger: logger}
}

// track registers a temporary file for deletion at the end of the run.
func (t *tempTracker) track(path string) {
	t.paths = append(t.paths, path)
}

// cleanup deletes every tracked file. It runs on all exit paths of
// Process, success and failure alike.
func (t *tempTracker) cleanup() {
	for _, path := range t.paths {
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				t.logger.Warn("failed to clean up temp file",
					zap.String("path", path),
					zap.Error(err),
				)
			}
			continue
		}
		t.logger.Debug("cleaned up temp file", zap.String("path", path))
	}
	t.paths = nil
}
