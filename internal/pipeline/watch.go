package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RebuildFunc performs one full build.
type RebuildFunc func(ctx context.Context) error

// WatchOptions configures the rebuild loop.
type WatchOptions struct {
	DecksDir    string
	Files       []string      // Individual input files, e.g. the ban list and deck index
	Debounce    time.Duration // Quiet period after the last change before rebuilding
	MinInterval time.Duration // Minimum time between two rebuilds
}

// Watcher rebuilds the output whenever the inputs change.
type Watcher struct {
	opts    WatchOptions
	rebuild RebuildFunc
	limiter *rate.Limiter
	logger  *zap.Logger
	files   map[string]bool
}

// NewWatcher creates a watcher. Every rebuild recomputes everything from scratch.
func NewWatcher(opts WatchOptions, rebuild RebuildFunc, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}

	files := make(map[string]bool, len(opts.Files))
	for _, f := range opts.Files {
		files[filepath.Clean(f)] = true
	}

	return &Watcher{
		opts:    opts,
		rebuild: rebuild,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.Named("watch"),
		files:   files,
	}
}

// Run builds once, then rebuilds after input changes until ctx is cancelled.
// Build failures are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) (err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, dir := range w.watchDirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	// The initial build takes the limiter's only token.
	w.limiter.Allow()
	w.build(ctx)
	w.logger.Info("Watching for changes", zap.Strings("dirs", w.watchDirs()))

	var debounce *time.Timer
	var fire <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Input changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if debounce == nil {
				debounce = time.NewTimer(w.opts.Debounce)
			} else {
				debounce.Reset(w.opts.Debounce)
			}
			fire = debounce.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			if err := w.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			w.build(ctx)
		}
	}
}

func (w *Watcher) build(ctx context.Context) {
	start := time.Now()
	if err := w.rebuild(ctx); err != nil {
		w.logger.Error("Rebuild failed", zap.Error(err))
		return
	}
	w.logger.Info("Rebuilt output", zap.Duration("duration", time.Since(start)))
}

// watchDirs returns the deck directory plus the directories holding the watched files.
// Files are watched through their directory so atomic replacements are seen.
func (w *Watcher) watchDirs() []string {
	seen := map[string]bool{}
	var dirs []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	add(w.opts.DecksDir)
	for _, f := range w.opts.Files {
		add(filepath.Dir(f))
	}
	return dirs
}

// relevant reports whether an event touches a deck document or a watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	path := filepath.Clean(event.Name)
	if w.files[path] {
		return true
	}
	return filepath.Dir(path) == filepath.Clean(w.opts.DecksDir) && strings.EqualFold(filepath.Ext(path), ".json")
}
