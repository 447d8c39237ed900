package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/mapconv/internal/model"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a fixed set of local files.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange once per burst of
	// writes to any of paths.
	Watch(ctx context.Context, paths []m.Path, onChange func(m.Path)) error
}

// FSNotifyWatcher implements Watcher with fsnotify. Parent directories are
// watched so editors that replace files on save are still seen.
type FSNotifyWatcher struct {
	debounce time.Duration
}

// NewFSNotifyWatcher constructs a watcher with the default debounce window.
func NewFSNotifyWatcher() *FSNotifyWatcher {
	return &FSNotifyWatcher{debounce: defaultDebounce}
}

// Watch implements Watcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, paths []m.Path, onChange func(m.Path)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	targets := make(map[string]m.Path, len(paths))
	dirs := make(map[string]struct{})

	for _, p := range paths {
		abs, err := filepath.Abs(string(p))
		if err != nil {
			return err
		}

		targets[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)

	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch error: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}

			if _, watched := targets[abs]; watched {
				pending[abs] = time.Now()
			}
		case now := <-ticker.C:
			for abs, seen := range pending {
				if now.Sub(seen) < w.debounce {
					continue
				}

				delete(pending, abs)
				onChange(targets[abs])
			}
		}
	}
}
