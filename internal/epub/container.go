package epub

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
)

// ContainerPath is the location of the container file relative to the
// package root.
const ContainerPath = "META-INF/container.xml"

// ResolveRootfile reads the container file of the package at root and
// returns the path of the package manifest relative to root.
func ResolveRootfile(root string) (string, error) {
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(ContainerPath)))
	if err != nil {
		return "", ErrManifestNotFound.Wrap(err)
	}
	defer f.Close()

	return findRootfile(f)
}

// findRootfile returns the full-path of the first rootfile element. Tag names
// are matched without regard to case or namespace prefix, and the camel-cased
// fullPath attribute is accepted as well.
func findRootfile(r io.Reader) (string, error) {
	decoder := newDecoder(r)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return "", ErrRootfileNotFound
		}

		if err != nil {
			return "", ErrRootfileNotFound.Wrap(err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || !strings.EqualFold(start.Name.Local, "rootfile") {
			continue
		}

		if p, ok := attr(start, "full-path", "fullPath"); ok && p != "" {
			return strings.TrimPrefix(p, "/"), nil
		}
	}
}

func newDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	return decoder
}

// attr returns the value of the first attribute whose local name matches one
// of names, tried in order.
func attr(el xml.StartElement, names ...string) (string, bool) {
	for _, name := range names {
		for _, a := range el.Attr {
			if a.Name.Local == name {
				return a.Value, true
			}
		}
	}

	return "", false
}
