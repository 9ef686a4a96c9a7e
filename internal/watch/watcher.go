// Package watch triggers a callback after changes below a directory tree
// settle for a debounce period.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
)

const defaultDebounce = 500 * time.Millisecond

// Config holds the parameters for a Watcher.
type Config struct {
	// Dir is the directory tree to watch, including directories created later.
	Dir string

	// Debounce is the quiet period after the last event before OnChange fires.
	Debounce time.Duration

	// OnChange receives the changed paths relative to Dir, sorted. Errors are
	// logged and watching continues.
	OnChange func(ctx context.Context, changed []string) error
}

// Watcher monitors a directory tree with fsnotify.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	dir      string
	debounce time.Duration
}

// New registers every directory below cfg.Dir.
func New(cfg Config) (*Watcher, error) {
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve watch directory: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch directory %s is not a directory", dir)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{cfg: cfg, fsw: fsw, dir: dir, debounce: debounce}
	if err := w.addDirsRecursive(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run blocks until ctx is cancelled. Callbacks run on the event loop, so a
// change arriving during a callback is picked up by the next one.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			slog.Warn("Failed to close watcher", logfields.Error(err))
		}
	}()

	pending := make(map[string]struct{})
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	slog.Info("Watching for changes", logfields.Path(w.dir), slog.Duration("debounce", w.debounce))
	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("fsnotify event channel closed")
			}
			if ignored(evt.Name) {
				continue
			}
			if evt.Has(fsnotify.Create) {
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					if err := w.addDirsRecursive(evt.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(evt.Name), logfields.Error(err))
					}
				}
			}

			rel, err := filepath.Rel(w.dir, evt.Name)
			if err != nil {
				rel = evt.Name
			}
			pending[filepath.ToSlash(rel)] = struct{}{}
			slog.Debug("Change detected", logfields.Path(rel), slog.String("op", evt.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)
			if w.cfg.OnChange == nil {
				continue
			}
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				slog.Error("Regeneration failed", logfields.Count(len(changed)), logfields.Error(err))
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("fsnotify error channel closed")
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) addDirsRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", logfields.Path(path), logfields.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ignored(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// ignored filters hidden entries and editor backup files.
func ignored(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp")
}
