package script

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schmitthub/stubkit/internal/logger"
)

// Watcher reports changes to a single script file. The parent directory is
// watched so editors that replace the file on save are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
}

// NewWatcher starts watching path. Changes closer together than debounce are
// reported once.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{watcher: fw, path: abs, debounce: debounce}, nil
}

// Run calls onChange after each debounced change until ctx is done or
// onChange returns an error.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("script changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("file watcher error")

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
