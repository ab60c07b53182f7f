package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kjnav/kjnav/internal/discover"
	"github.com/kjnav/kjnav/internal/indexer"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"build":        true,
	".gradle":      true,
	".idea":        true,
	".vscode":      true,
}

func watchAndReindex(ctx context.Context, repoPath string, handle *indexer.Handle, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, repoPath); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				reindex(ctx, repoPath, handle, logger)
			})

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func reindex(ctx context.Context, repoPath string, handle *indexer.Handle, logger *slog.Logger) {
	files, err := discover.Find(repoPath)
	if err != nil {
		logger.Warn("reindex discovery failed", "error", err)
		return
	}

	before, after, err := handle.Reindex(ctx, files, readFile, logger)
	if err != nil {
		logger.Warn("reindex failed", "error", err)
		return
	}
	logger.Info("reindexed", "before", before.String(), "after", after.String())
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".kt" || ext == ".java"
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if isMissingPath(err) && path != root {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (skippedDirs[d.Name()] || d.Name()[0] == '.') {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			if isMissingPath(err) {
				return nil
			}
			return err
		}
		return nil
	})
}

func isMissingPath(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, fs.ErrNotExist)
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	_ = addWatchDirs(watcher, path)
}
