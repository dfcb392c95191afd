// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/bookmark/internal/osutil"
)

const (
	filesDir = "files"

	// SampleBookName is the directory name of the bundled sample book.
	SampleBookName = "SampleBook"
)

//go:embed files
var embeddedFiles embed.FS

// CopySampleBook writes the bundled sample book into libraryDir unless a
// directory of the same name is already there. It reports whether the book
// was written.
func CopySampleBook(libraryDir string) (bool, error) {
	dest := filepath.Join(libraryDir, SampleBookName)

	_, err := os.Stat(dest)
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	root := path.Join(filesDir, SampleBookName)

	err = fs.WalkDir(
		embeddedFiles,
		root,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, root+"/")

			destPath := filepath.Join(dest, filepath.FromSlash(stripped))

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
	if err != nil {
		return false, err
	}

	return true, nil
}
