package app

import (
	"context"
	"sync"

	fsw "github.com/corey/hue/internal/adapters/fsnotify"
	"github.com/corey/hue/internal/domain/solver"
	"github.com/corey/hue/internal/log"
	"github.com/corey/hue/internal/ports"
)

// WatchFunc receives the outcome of each run in watch mode. path is empty for
// the initial run and names the changed file afterwards.
type WatchFunc func(path string, res *Result, err error)

// Watch solves the inputs once, then again every time one of the input files
// changes, until ctx is done. A failed run is reported to fn and watching
// continues. w may be nil to use the fsnotify watcher.
func (a *App) Watch(ctx context.Context, v solver.Variant, in Inputs, w ports.Watcher, fn WatchFunc) error {
	if w == nil {
		fw, err := fsw.NewWatcher()
		if err != nil {
			return err
		}
		w = fw
	}
	defer w.Stop()

	// Runs are serialized; callbacks may arrive from several timers.
	var mu sync.Mutex
	run := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if path != "" {
			a.log.Debug("input changed", log.Path(path))
		}
		res, err := a.Solve(v, in)
		fn(path, res, err)
	}

	run("")
	if err := w.Watch(in.Files(), run); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
