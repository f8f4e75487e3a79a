// Package watch re-runs a build whenever a profile file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/brendandebeasi/tmux-up/pkg/logging"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// ApplyFunc rebuilds from the current file contents.
type ApplyFunc func(ctx context.Context) error

// Watcher watches one file. The parent directory is watched rather than the
// file itself so that editors which replace the file on save keep
// triggering.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Run calls apply after each settled change to Path until ctx is done. A
// failed apply is logged and watching continues. Run does not apply once up
// front.
func (w *Watcher) Run(ctx context.Context, apply ApplyFunc) error {
	log := w.Logger
	if log == nil {
		log = logging.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()

	dir, name := filepath.Split(filepath.Clean(w.Path))
	if dir == "" {
		dir = "."
	}
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info("watching profile", "path", w.Path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("profile changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case <-fire:
			fire = nil
			if err := apply(ctx); err != nil {
				log.Error("re-apply failed", "path", w.Path, "error", err)
				continue
			}
			log.Info("re-applied profile", "path", w.Path)
		}
	}
}
