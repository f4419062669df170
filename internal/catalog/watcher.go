package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay coalesces the burst of write events editors and atomic-save
// tools emit for a single catalog update.
const debounceDelay = 500 * time.Millisecond

// Watcher reloads the store when the catalog file changes on disk. It
// watches the parent directory rather than the file itself so atomic
// rename-into-place saves are still seen.
type Watcher struct {
	store   *Store
	path    string
	fswatch *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher creates a watcher for the store's catalog file.
func NewWatcher(store *Store, path string, logger *zap.Logger) (*Watcher, error) {
	fswatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fswatch.Add(filepath.Dir(path)); err != nil {
		fswatch.Close()
		return nil, fmt.Errorf("watching catalog directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{store: store, path: path, fswatch: fswatch, logger: logger}, nil
}

// Run processes file events until the context is canceled. It blocks, so
// callers run it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	reload := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fswatch.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := w.store.Reload(); err != nil {
				w.logger.Warn("catalog reload failed", zap.Error(err))
			}

		case err, ok := <-w.fswatch.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

// Close releases the underlying file watcher.
func (w *Watcher) Close() error {
	return w.fswatch.Close()
}
