package platform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce groups bursts of events, e.g. a copy of many files
const DefaultWatchDebounce = 300 * time.Millisecond

// DirWatcher watches a raw data directory and reports the current specimen
// file list whenever CSV files appear, disappear or are renamed.
type DirWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func([]string)
	logger   *zap.Logger

	dirty   bool
	lastEv  time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewDirWatcher creates a watcher for dir. onChange receives the sorted file
// list from ListCSVFiles and is called from the watcher goroutine.
func NewDirWatcher(dir string, onChange func([]string), logger *zap.Logger) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirWatcher{
		watcher:  watcher,
		dir:      dir,
		debounce: DefaultWatchDebounce,
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the debounce window. Must be called before Start.
func (w *DirWatcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Start begins watching. It is non-blocking.
func (w *DirWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// running stays false on failure so Stop does not wait for the loop
	if err := CreateDirectoryIfNotExists(w.dir); err != nil {
		return fmt.Errorf("failed to create %s: %w", w.dir, err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.running = true
	w.logger.Debug("watching raw data directory", zap.String("dir", w.dir))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit
func (w *DirWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("error closing watcher", zap.Error(err))
	}
}

func (w *DirWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
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
			w.logger.Warn("watcher error", zap.Error(err))
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *DirWatcher) handleEvent(event fsnotify.Event) {
	if !IsSpecimenFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("specimen file event", zap.String("file", event.Name), zap.String("op", event.Op.String()))
	w.mu.Lock()
	w.dirty = true
	w.lastEv = time.Now()
	w.mu.Unlock()
}

func (w *DirWatcher) flush() {
	w.mu.Lock()
	if !w.dirty || time.Since(w.lastEv) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.dirty = false
	w.mu.Unlock()

	files, err := ListCSVFiles(w.dir)
	if err != nil {
		w.logger.Warn("failed to list specimen files", zap.Error(err))
		return
	}
	if w.onChange != nil {
		w.onChange(files)
	}
}
