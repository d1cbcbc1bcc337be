package workspace

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 300 * time.Millisecond

// Watcher invalidates a Loader whenever one of its backing files changes.
type Watcher struct {
	loader   *Loader
	watcher  *fsnotify.Watcher
	tracked  map[string]bool
	onChange func(path string)
	mu       sync.Mutex
	pending  *time.Timer
	changed  string
	ready    chan struct{}
	logger   *slog.Logger
}

func NewWatcher(loader *Loader) *Watcher {
	tracked := make(map[string]bool)
	for _, rel := range TrackedFiles() {
		tracked[loader.Path(rel)] = true
	}
	return &Watcher{loader: loader, tracked: tracked, ready: make(chan struct{})}
}

// Ready is closed once the initial watches are in place.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

func (w *Watcher) SetLogger(logger *slog.Logger) {
	w.logger = logger
}

// OnChange registers fn to run after the cache has been invalidated.
func (w *Watcher) OnChange(fn func(path string)) {
	w.onChange = fn
}

// Start watches until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher
	defer w.watcher.Close()

	if err := w.watcher.Add(w.loader.root); err != nil {
		return err
	}
	for _, dir := range w.trackedDirs() {
		w.addDir(dir)
	}
	close(w.ready)

	for {
		select {
		case <-ctx.Done():
			w.stopPending()
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(event.Name)
				}
			}
			if shouldInvalidate(event) && w.tracked[filepath.Clean(event.Name)] {
				w.schedule(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logError("watcher_error", "error", err)
		}
	}
}

// trackedDirs lists the parent directories of tracked files below the root.
func (w *Watcher) trackedDirs() []string {
	seen := map[string]bool{filepath.Clean(w.loader.root): true}
	var dirs []string
	for path := range w.tracked {
		for dir := filepath.Dir(path); !seen[dir]; dir = filepath.Dir(dir) {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// addTree watches a newly created directory and any tracked directories
// below it. Tracked files written before the watch was added produce no
// event, so any that already exist are scheduled here.
func (w *Watcher) addTree(dir string) {
	dir = filepath.Clean(dir)
	for _, d := range w.trackedDirs() {
		if d == dir || isWithin(dir, d) {
			w.addDir(d)
		}
	}
	for path := range w.tracked {
		if !isWithin(dir, path) {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			w.schedule(path)
		}
	}
}

func (w *Watcher) addDir(dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}
	if err := w.watcher.Add(dir); err != nil {
		w.logError("watch_failed", "path", dir, "error", err)
	}
}

func shouldInvalidate(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.changed = path
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(debounceDelay, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	path := w.changed
	w.pending = nil
	w.mu.Unlock()

	w.loader.Invalidate()
	w.logInfo("workspace_config_invalidated", "path", path)
	if w.onChange != nil {
		w.onChange(path)
	}
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (w *Watcher) logInfo(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Info(msg, args...)
	}
}

func (w *Watcher) logError(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Error(msg, args...)
	}
}
