package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchSystemConfig watches the system config file and re-loads it whenever
// it changes on disk, invoking apply with the fresh settings. Events are
// debounced so editor save sequences (write + rename) trigger one reload.
// The watcher runs in a goroutine until the context is canceled.
func WatchSystemConfig(ctx context.Context, path string, apply func(*SystemConfig)) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create fsnotify watcher", "error", err)
		return
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		slog.Warn("Could not resolve absolute path for watch file", "file", path)
		watcher.Close()
		return
	}
	// Watch the parent directory so atomic replaces (rename-over) are seen.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		slog.Warn("Could not watch config directory", "dir", filepath.Dir(absPath), "error", err)
		watcher.Close()
		return
	}
	slog.Debug("Watching system configuration file", "file", absPath)

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		debounceDuration := 500 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounceDuration, func() {
						slog.Info("System configuration change detected", "file", event.Name)
						apply(LoadSystemConfig(absPath))
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Watcher encountered an error", "error", err)
			}
		}
	}()
}
