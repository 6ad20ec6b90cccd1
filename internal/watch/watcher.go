// Package watch re-runs a callback when a config file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc is called after the watched file settles.
type ReloadFunc func(ctx context.Context) error

// ConfigWatcher monitors one file and triggers debounced reloads.
type ConfigWatcher struct {
	path         string
	watcher      *fsnotify.Watcher
	onReload     ReloadFunc
	debounceTime time.Duration
	reloadChan   chan struct{}
	wg           sync.WaitGroup
}

// NewConfigWatcher creates a watcher for path. Nothing is watched until Run.
func NewConfigWatcher(path string, debounce time.Duration, onReload ReloadFunc) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{
		path:         absPath,
		watcher:      w,
		onReload:     onReload,
		debounceTime: debounce,
		reloadChan:   make(chan struct{}, 1),
	}, nil
}

// Run watches until ctx is canceled and returns once every goroutine it
// started has exited. The directory is watched rather than the file so
// editors that replace the file by rename keep being observed.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer func() {
		if err := cw.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	dir := filepath.Dir(cw.path)
	if err := cw.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}
	slog.Info("Watching configuration", logfields.Path(cw.path))

	cw.wg.Add(1)
	go cw.reloadLoop(ctx)
	cw.watchLoop(ctx)
	cw.wg.Wait()
	return nil
}

func (cw *ConfigWatcher) watchLoop(ctx context.Context) {
	name := filepath.Base(cw.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				cw.triggerReload()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (cw *ConfigWatcher) triggerReload() {
	select {
	case cw.reloadChan <- struct{}{}:
	default:
		// reload already pending
	}
}

// reloadLoop runs reloads on its own goroutine so a slow reload never
// blocks event consumption. Reloads never overlap.
func (cw *ConfigWatcher) reloadLoop(ctx context.Context) {
	defer cw.wg.Done()

	timer := time.NewTimer(cw.debounceTime)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.reloadChan:
			timer.Reset(cw.debounceTime)
		case <-timer.C:
			if err := cw.onReload(ctx); err != nil {
				slog.Error("Failed to reload configuration", logfields.Path(cw.path), logfields.Error(err))
			}
		}
	}
}
