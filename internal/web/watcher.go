package web

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jaykalam/testimonialstack/internal/logger"
)

// PageWatcher rescans host pages when mount points may have appeared or
// changed. It has no terminal state on its own; it runs until stopped.
type PageWatcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// FileWatcher implements PageWatcher over fsnotify: whenever a watched HTML
// file changes on disk, the scanner re-runs over it. Rendering is
// deterministic and the scanner skips no-op writes, so repeated triggers
// settle.
type FileWatcher struct {
	scanner  *Scanner
	paths    map[string]struct{} // absolute file paths
	debounce time.Duration

	fsw  *fsnotify.Watcher
	stop chan struct{}
	once sync.Once

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewFileWatcher prepares a watcher over the given HTML files. Watching
// starts on Start.
func NewFileWatcher(scanner *Scanner, paths ...string) (*FileWatcher, error) {
	abs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		abs[a] = struct{}{}
	}
	return &FileWatcher{
		scanner:  scanner,
		paths:    abs,
		debounce: 200 * time.Millisecond,
		stop:     make(chan struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Start performs an initial scan of every watched file, then watches their
// directories and rescans on change. Editors replace files rather than write
// them, so the parent directory is watched instead of the file itself.
func (w *FileWatcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	dirs := make(map[string]struct{})
	for p := range w.paths {
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for d := range dirs {
		if err := fsw.Add(d); err != nil {
			logger.Warnf("watching %s: %v", d, err)
		}
	}

	for p := range w.paths {
		if _, err := w.scanner.ScanFile(ctx, p, ""); err != nil {
			logger.Warnf("initial scan of %s: %v", p, err)
		}
	}

	go w.loop(ctx)
	return nil
}

func (w *FileWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, watched := w.paths[abs]; !watched {
				continue
			}
			w.schedule(ctx, abs)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnf("watch error: %v", err)
		}
	}
}

// schedule debounces bursts of events for one file into a single rescan.
func (w *FileWatcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		n, err := w.scanner.ScanFile(ctx, path, "")
		if err != nil {
			logger.Warnf("rescan of %s: %v", path, err)
			return
		}
		logger.Infof("rescanned %s, %d widgets rendered", path, n)
	})
}

// Stop ends watching. Safe to call more than once.
func (w *FileWatcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		if w.fsw != nil {
			err = w.fsw.Close()
		}
		w.mu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.mu.Unlock()
	})
	return err
}
