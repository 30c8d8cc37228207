package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reports changes to the file at location until ctx is cancelled.
// The parent directory is watched because writers replace the file by
// rename. Bursts of events coalesce into a single pending signal.
func Watch(ctx context.Context, location string, logger *log.Logger) (<-chan struct{}, error) {
	dir := filepath.Dir(location)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)
	target := filepath.Clean(location)

	go func() {
		defer func() { _ = w.Close() }()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if logger != nil {
					logger.Warn("storage watch error", "path", location, "err", err)
				}
			}
		}
	}()

	return changes, nil
}
