// Package testutil builds unpacked book fixtures for tests
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayoisaiah/bookmark/internal/osutil"
)

// WriteTree creates files under a fresh temporary directory and returns its
// path. Keys are slash-separated paths relative to that directory.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))

		err := os.MkdirAll(filepath.Dir(p), osutil.DirPermission)
		if err != nil {
			t.Fatal(err)
		}

		err = os.WriteFile(p, []byte(content), osutil.FilePermission)
		if err != nil {
			t.Fatal(err)
		}
	}

	return root
}

// Package returns the files of a minimal unpacked book with the given title
// and chapter hrefs, suitable for WriteTree.
func Package(title, author string, chapters ...string) map[string]string {
	var items, refs string

	files := map[string]string{
		"META-INF/container.xml": `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`,
	}

	for i, href := range chapters {
		items += fmt.Sprintf(`<item id="c%d" href="%s" media-type="application/xhtml+xml"/>`, i, href)
		refs += fmt.Sprintf(`<itemref idref="c%d"/>`, i)
		files["OEBPS/"+href] = fmt.Sprintf("<html><body><p>%s %d</p></body></html>", title, i+1)
	}

	files["OEBPS/content.opf"] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>%s</dc:title>
    <dc:creator>%s</dc:creator>
  </metadata>
  <manifest>%s</manifest>
  <spine>%s</spine>
</package>`, title, author, items, refs)

	return files
}
