// Package watch reports changes to a single file.
package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 100 * time.Millisecond

// Watcher watches the directory of one file so that editors which replace
// the file by rename are still seen.
type Watcher struct {
	w     *fsnotify.Watcher
	path  string
	delay time.Duration
	log   *slog.Logger
}

// New starts watching path. Events are coalesced until delay passes without
// another one.
func New(path string, delay time.Duration, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{w: w, path: abs, delay: delay, log: log}, nil
}

// Run calls onChange after each burst of writes to the file until ctx is
// done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) {
	defer w.w.Close()

	debounce := time.NewTimer(0)
	<-debounce.C
	pending := false

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			pending = true
			debounce.Reset(w.delay)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "path", w.path, "err", err)
		case <-debounce.C:
			if pending {
				pending = false
				w.log.Debug("file changed", "path", w.path)
				onChange(w.path)
			}
		}
	}
}
