// Package watch reruns a reload function whenever a data file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long the file must stay quiet before a reload.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc is called once the watched file settles. runID identifies the
// reload in log entries.
type ReloadFunc func(ctx context.Context, runID string) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period; d <= 0 keeps DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher watches one file. Editors that save by renaming a temporary file
// over the target are handled because the parent directory is watched.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      logrus.FieldLogger
	reload   ReloadFunc
}

// New starts watching path. Close releases the watch.
func New(path string, reload ReloadFunc, opts ...Option) (*Watcher, error) {
	if reload == nil {
		return nil, fmt.Errorf("watch.New: nil reload func")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch.New: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch.New: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch.New: %w", err)
	}

	w := &Watcher{
		fs:       fsw,
		path:     abs,
		debounce: DefaultDebounce,
		log:      logrus.StandardLogger(),
		reload:   reload,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run processes events until ctx is done or the watch is closed. A failed
// reload is logged and does not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
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

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("file watch error")

		case <-fire:
			fire = nil
			w.run(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) run(ctx context.Context) {
	runID := uuid.NewString()
	log := w.log.WithFields(logrus.Fields{"run_id": runID, "path": w.path})
	start := time.Now()

	if err := w.reload(ctx, runID); err != nil {
		log.WithError(err).Warn("reload failed")
		return
	}
	log.WithField("duration", time.Since(start)).Info("reloaded")
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
