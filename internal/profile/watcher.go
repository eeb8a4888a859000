package profile

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fsnotify/fsnotify"

	"mandala/internal/grid"
)

// ChangeFunc receives a reloaded grid after a profile file settles. err
// is non-nil when the file changed but no longer parses.
type ChangeFunc func(path string, g *grid.Grid, err error)

// Watcher watches a profile directory and reloads grids as their files
// change. Rapid saves are debounced: editors that write a file several
// times in quick succession trigger one reload, not five.
type Watcher struct {
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	dir      string
	onChange ChangeFunc
	logger   *zap.Logger
	pending  map[string]time.Time
	settle   time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity for the watch command's exit
// summary and for debugging.
type WatcherStats struct {
	FilesCreated  int
	FilesModified int
	FilesRemoved  int
	Reloads       int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
}

// NewWatcher creates a Watcher over dir. Events for files that are not
// profiles (.json, .yaml, .yml) are ignored. The callback runs on the
// watcher goroutine; keep it quick.
func NewWatcher(dir string, onChange ChangeFunc, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fsw,
		dir:      dir,
		onChange: onChange,
		logger:   logger,
		pending:  make(map[string]time.Time),
		settle:   500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in its own
// goroutine until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		w.logger.Warn("failed to create profile directory, watching anyway", zap.String("dir", w.dir), zap.Error(err))
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.watcher.Close()
		return err
	}
	w.logger.Debug("watching profile directory", zap.String("dir", w.dir))

	go w.run(ctx)
	return nil
}

// Stop halts the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("failed to close watcher", zap.Error(err))
	}
}

// Watching reports whether the event loop is live.
func (w *Watcher) Watching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// Stats returns a copy of the current watcher statistics.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// The ticker sweeps the pending map for events past the settle window.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watcher context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.reloadSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !isProfilePath(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name

	switch {
	case event.Op&fsnotify.Create != 0:
		w.stats.FilesCreated++
	case event.Op&fsnotify.Write != 0:
		w.stats.FilesModified++
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		w.stats.FilesRemoved++
	default:
		return // chmod noise
	}

	w.pending[event.Name] = time.Now()
}

func (w *Watcher) reloadSettled() {
	w.mu.Lock()
	now := time.Now()
	settled := make([]string, 0, len(w.pending))
	for path, at := range w.pending {
		if now.Sub(at) >= w.settle {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		w.reload(path)
	}
}

func (w *Watcher) reload(path string) {
	g, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		// Removed between the event and the sweep. The remove counter
		// already saw it; nothing to hand the callback.
		w.logger.Debug("profile gone before reload", zap.String("path", path))
		return
	}

	w.mu.Lock()
	w.stats.Reloads++
	if err != nil {
		w.stats.Errors++
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("profile reload failed", zap.String("path", path), zap.Error(err))
	} else {
		w.logger.Debug("profile reloaded", zap.String("path", path), zap.String("name", g.Name))
	}
	if w.onChange != nil {
		w.onChange(path, g, err)
	}
}
