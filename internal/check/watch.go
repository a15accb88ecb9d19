package check

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn once for paths and again after every burst of writes to
// a watched .sql file. Directories are watched recursively; for a plain
// file its directory is watched. Watch returns when ctx is done.
func Watch(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, fn func(context.Context)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() { _ = w.Close() }()

	var roots []string
	files := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return err
		}
		switch {
		case info.IsDir():
			roots = append(roots, abs)
			err = addTree(w, abs)
		default:
			files[abs] = true
			err = w.Add(filepath.Dir(abs))
		}
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	fn(ctx)

	// One timer, armed by each relevant event; it fires debounce after
	// the last one.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && len(roots) > 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						logger.Warn("watch new directory", "dir", ev.Name, "error", err)
					}
					continue
				}
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !relevant(ev.Name, files, roots) {
				continue
			}
			logger.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			fn(ctx)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// relevant reports whether a change to name should trigger a re-check:
// an explicitly named file, or a .sql file below a watched directory.
func relevant(name string, files map[string]bool, roots []string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if files[abs] {
		return true
	}
	if filepath.Ext(abs) != Extension {
		return false
	}
	for _, root := range roots {
		if rel, err := filepath.Rel(root, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}

// addTree watches dir and every directory below it.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		return w.Add(path)
	})
}
