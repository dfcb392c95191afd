// Package epub parses unpacked EPUB document packages: the container file,
// the package manifest it points to, and the reading order of chapters.
package epub

import (
	"path/filepath"
)

// Chapter is a single entry in the reading order.
type Chapter struct {
	Title       string `json:"title"`
	ContentPath string `json:"content_path"`
}

// Package is the parsed form of an unpacked EPUB directory. ContentPath,
// CoverImagePath and ManifestPath are slash-separated and relative to
// RootDirectory.
type Package struct {
	Genre          *string   `json:"genre,omitempty"`
	CoverImagePath *string   `json:"cover_image_path,omitempty"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	RootDirectory  string    `json:"root_directory"`
	ManifestPath   string    `json:"manifest_path"`
	Chapters       []Chapter `json:"chapters"`
}

// Abs returns the filesystem path of a package-relative path.
func (p *Package) Abs(rel string) string {
	return filepath.Join(p.RootDirectory, filepath.FromSlash(rel))
}

// Chapter returns the chapter at index i if it exists.
func (p *Package) Chapter(i int) (Chapter, bool) {
	if i < 0 || i >= len(p.Chapters) {
		return Chapter{}, false
	}

	return p.Chapters[i], true
}

// Parse reads the unpacked EPUB at root. It fails if the container file is
// missing, names no manifest, or if the manifest cannot be read or is not
// well-formed XML.
func Parse(root string) (*Package, error) {
	manifestPath, err := ResolveRootfile(root)
	if err != nil {
		return nil, err
	}

	doc, err := parseManifest(
		filepath.Join(root, filepath.FromSlash(manifestPath)),
	)
	if err != nil {
		return nil, err
	}

	return assemble(root, manifestPath, doc), nil
}
