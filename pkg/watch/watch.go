// Package watch reloads the configuration store when the user
// customization file changes on disk. It is integration-layer glue: the
// engine itself never touches the filesystem.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/logger"
)

// DefaultDebounce coalesces the burst of events editors emit for a
// single save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a config.Store whenever the watched file changes. A
// failed reload logs the error and leaves the previous snapshot live.
type Watcher struct {
	store    *config.Store
	path     string
	debounce time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher for the user customization file at path.
func New(store *config.Store, path string, opts ...Option) *Watcher {
	w := &Watcher{store: store, path: path, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file itself because most editors replace files on
// save, which drops inotify watches on the old inode.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create filesystem watcher")
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", dir)
	}

	log := logger.G(ctx).WithField("path", w.path)
	log.Info("watching customization file")

	var timer *time.Timer
	var timerCh <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("filesystem watcher error")
		case <-timerCh:
			timer = nil
			timerCh = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	log := logger.G(ctx).WithField("path", w.path)

	var user *config.Document
	if _, err := os.Stat(w.path); err == nil {
		doc, err := config.ReadDocument(w.path)
		if err != nil {
			log.WithError(err).Error("customization file does not parse, keeping previous configuration")
			return
		}
		user = doc
	}
	// A deleted file reloads with no user document, restoring the
	// compiled-in defaults.

	merged, err := w.store.Reload(user)
	if err != nil {
		log.WithError(err).Error("reload rejected, keeping previous configuration")
		return
	}
	log.WithField("version", merged.Version()).Info("customization reloaded")
}
