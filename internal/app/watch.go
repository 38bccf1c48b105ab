package app

import (
	"context"
	"os"
	"sync"
	"time"
)

// DataWatcher polls the input files and reports when any of them changes
// after the baseline was taken. It is used to offer a reload while the
// description or the annotations are being edited.
type DataWatcher struct {
	paths    []string
	interval time.Duration

	mu       sync.Mutex
	baseline map[string]time.Time

	onChange func(changed []string)
}

// NewDataWatcher takes the current modification times of paths as the
// baseline. Missing files count as unchanged until they appear.
func NewDataWatcher(interval time.Duration, paths ...string) *DataWatcher {
	w := &DataWatcher{
		paths:    paths,
		interval: interval,
	}
	w.ResetBaseline()
	return w
}

// OnChange sets the callback to invoke when files change. The callback is
// called from the watcher goroutine.
func (w *DataWatcher) OnChange(callback func(changed []string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = callback
}

// Start polls until ctx is done.
func (w *DataWatcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
}

func (w *DataWatcher) watchLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changed := w.Changed()
			if len(changed) == 0 {
				continue
			}
			w.mu.Lock()
			callback := w.onChange
			w.mu.Unlock()
			if callback != nil {
				callback(changed)
			}
			// report each change once
			w.ResetBaseline()
		}
	}
}

// Changed returns the paths modified since the baseline.
func (w *DataWatcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var changed []string
	for _, p := range w.paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.ModTime().Equal(w.baseline[p]) {
			changed = append(changed, p)
		}
	}
	return changed
}

// SetPaths replaces the watched files and takes a new baseline, e.g. after
// another map scan was opened.
func (w *DataWatcher) SetPaths(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.paths = paths
	w.resetBaseline()
}

// ResetBaseline records the current modification times. Call it after a
// reload, or when the user declines one, to avoid repeated notifications.
func (w *DataWatcher) ResetBaseline() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetBaseline()
}

func (w *DataWatcher) resetBaseline() {
	w.baseline = make(map[string]time.Time, len(w.paths))
	for _, p := range w.paths {
		if info, err := os.Stat(p); err == nil {
			w.baseline[p] = info.ModTime()
		}
	}
}
