// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directories holding the input files, ignores every other
// entry in them, and debounces bursts of events (editors often trigger several
// writes, or a write plus a rename, per save).
package fsnotify

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before onChange fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	done     chan struct{}
	debounce time.Duration

	mu      sync.Mutex
	stopped bool
	timers  map[string]*time.Timer

	// inflight counts onChange calls that have started and not returned.
	inflight sync.WaitGroup
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// SetDebounce changes the quiet period. Call before Watch.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Watch starts monitoring files.
// onChange is called with the absolute path of each changed file.
func (w *Watcher) Watch(files []string, onChange func(filePath string)) error {
	if len(files) == 0 {
		return errors.New("no files to watch")
	}

	wanted := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := filepath.Clean(event.Name)
				if !wanted[path] {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.schedule(path, onChange)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed; fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule (re)starts the quiet-period timer for path.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.stopped {
			w.mu.Unlock()
			return
		}
		delete(w.timers, path)
		w.inflight.Add(1)
		w.mu.Unlock()
		defer w.inflight.Done()
		onChange(path)
	})
}

// Stop ends monitoring and releases all resources. It waits for a callback
// that is already running, so it must not be called from onChange.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		w.inflight.Wait()
		return nil
	}
	w.stopped = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.inflight.Wait()
	return err
}
