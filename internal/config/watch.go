package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/logger"
)

// reloadDelay coalesces the burst of events editors emit for a single save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads path whenever it changes and sends each valid result.
// Invalid files are logged and skipped so the previous config stays active.
// The channel is closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan *Config, 1)
	go watchLoop(ctx, w, abs, out)
	return out, nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, out chan *Config) {
	log := logger.Named("config")
	defer close(out)
	defer w.Close()

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			cfg, err := LoadPath(path)
			if err != nil {
				log.Warn("config reload rejected, keeping previous", zap.String("path", path), zap.Error(err))
				continue
			}
			log.Info("config reloaded", zap.String("path", path))

			// Drop a stale unread config so the newest one wins.
			select {
			case <-out:
			default:
			}
			select {
			case out <- cfg:
			case <-ctx.Done():
				return
			}
		}
	}
}
