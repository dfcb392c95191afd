package library

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/osutil"
)

// DefaultDebounce is how long Watch waits for more changes before scanning.
const DefaultDebounce = 500 * time.Millisecond

// Watch rescans the library whenever its contents change and passes the
// result to fn. Bursts of changes within debounce trigger a single scan. It
// blocks until ctx is cancelled.
func (l *Library) Watch(
	ctx context.Context,
	debounce time.Duration,
	fn func([]*epub.Package),
) error {
	err := os.MkdirAll(l.dir, osutil.DirPermission)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	err = l.addWatchesRecursive(ctx, fsw, l.dir)
	if err != nil {
		return err
	}

	l.logger.InfoContext(
		ctx,
		"library watcher started",
		slog.String("dir", l.dir),
		slog.Duration("debounce", debounce),
	)

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = l.addWatchesRecursive(ctx, fsw, event.Name)
				}
			}

			timer.Reset(debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			l.logger.ErrorContext(ctx, "watcher error", slog.Any("error", err))

		case <-timer.C:
			books, err := l.Scan(ctx)
			if err != nil {
				l.logger.ErrorContext(ctx, "library rescan failed", slog.Any("error", err))
				continue
			}

			fn(books)
		}
	}
}

// addWatchesRecursive adds watches to all directories under root.
func (l *Library) addWatchesRecursive(
	ctx context.Context,
	fsw *fsnotify.Watcher,
	root string,
) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if path != root && strings.HasPrefix(base, ".") {
			return filepath.SkipDir
		}

		if err := fsw.Add(path); err != nil {
			l.logger.WarnContext(
				ctx,
				"failed to watch directory",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}

		return nil
	})
}
