// Package library finds the unpacked books in the library directory and
// keeps them in a chosen order
package library

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/osutil"
	"github.com/ayoisaiah/bookmark/internal/static"
)

// Library is a directory whose sub-directories are unpacked books.
type Library struct {
	logger *slog.Logger
	dir    string
}

func New(dir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}

	return &Library{
		dir:    dir,
		logger: logger,
	}
}

func (l *Library) Dir() string {
	return l.dir
}

// Scan parses every sub-directory of the library. Directories that are not
// valid books are logged and left out. The library directory is created if
// it does not exist.
func (l *Library) Scan(ctx context.Context) ([]*epub.Package, error) {
	err := os.MkdirAll(l.dir, osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	books := make([]*epub.Package, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		root := filepath.Join(l.dir, entry.Name())

		pkg, err := epub.Parse(root)
		if err != nil {
			l.logger.WarnContext(
				ctx,
				"skipping unreadable book",
				slog.String("dir", root),
				slog.Any("error", err),
			)

			continue
		}

		books = append(books, pkg)
	}

	l.logger.DebugContext(
		ctx,
		"library scanned",
		slog.String("dir", l.dir),
		slog.Int("books", len(books)),
	)

	return books, nil
}

// Find resolves a book argument. A path to a directory is parsed directly;
// anything else is matched case-insensitively against the titles and
// directory names of the books in the library.
func (l *Library) Find(ctx context.Context, arg string) (*epub.Package, error) {
	info, err := os.Stat(arg)
	if err == nil && info.IsDir() {
		return epub.Parse(arg)
	}

	books, err := l.Scan(ctx)
	if err != nil {
		return nil, err
	}

	for _, pkg := range books {
		if strings.EqualFold(pkg.Title, arg) ||
			strings.EqualFold(filepath.Base(pkg.RootDirectory), arg) {
			return pkg, nil
		}
	}

	return nil, ErrBookNotFound.Fmt(arg)
}

// EnsureSample writes the bundled sample book into the library if it is not
// there yet.
func (l *Library) EnsureSample(ctx context.Context) error {
	written, err := static.CopySampleBook(l.dir)
	if err != nil {
		return err
	}

	if written {
		l.logger.InfoContext(
			ctx,
			"sample book created",
			slog.String("dir", filepath.Join(l.dir, static.SampleBookName)),
		)
	}

	return nil
}

// Import copies the unpacked book at src into the library. The book must
// parse and its directory name must not be taken.
func (l *Library) Import(ctx context.Context, src string) (*epub.Package, error) {
	if _, err := epub.Parse(src); err != nil {
		return nil, err
	}

	dest := filepath.Join(l.dir, filepath.Base(filepath.Clean(src)))

	if _, err := os.Stat(dest); err == nil {
		return nil, ErrBookExists.Fmt(dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	err := copyTree(src, dest)
	if err != nil {
		_ = os.RemoveAll(dest)
		return nil, err
	}

	l.logger.InfoContext(
		ctx,
		"book imported",
		slog.String("src", src),
		slog.String("dest", dest),
	)

	return epub.Parse(dest)
}

// Remove deletes a book directory from the library. Books outside the library
// directory are never touched.
func (l *Library) Remove(ctx context.Context, pkg *epub.Package) error {
	rel, err := filepath.Rel(l.dir, pkg.RootDirectory)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") ||
		strings.ContainsRune(rel, filepath.Separator) {
		return errNotInLibrary.Fmt(pkg.RootDirectory)
	}

	err = os.RemoveAll(pkg.RootDirectory)
	if err != nil {
		return err
	}

	l.logger.InfoContext(
		ctx,
		"book removed",
		slog.String("dir", pkg.RootDirectory),
	)

	return nil
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}

		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, osutil.DirPermission)
		}

		if !d.Type().IsRegular() {
			return nil
		}

		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}

		return os.WriteFile(target, b, osutil.FilePermission)
	})
}
