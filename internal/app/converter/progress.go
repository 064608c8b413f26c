package converter

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls batch progress rendering.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressManager renders progress bars for batch runs.
type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// ProgressBar wraps a single bar; a disabled bar is a no-op.
type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
	started time.Time
}

// NewProgressManager creates a progress manager. When disabled all bar
// operations are no-ops.
func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

// CreateBar adds a bar for total units of work.
func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" "),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncWidth), "done"),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
		started: time.Now(),
	}
}

// Increment advances the bar by one.
func (pb *ProgressBar) Increment() {
	if !pb.enabled || pb.bar == nil {
		return
	}
	pb.bar.Increment()
}

// Wait blocks until all bars render their final state.
func (pm *ProgressManager) Wait() {
	if !pm.enabled || pm.container == nil {
		return
	}
	pm.container.Wait()
}
