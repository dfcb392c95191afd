package epub

import (
	"fmt"
	"path"
	"strings"
)

const (
	unknownTitle  = "Unknown Title"
	unknownAuthor = "Unknown Author"
)

// assemble turns a decoded manifest into a Package. Spine entries whose idref
// has no manifest item are skipped and do not consume a chapter number.
func assemble(root, manifestPath string, doc *opfDocument) *Package {
	manifestDir := path.Dir(manifestPath)

	chapters := make([]Chapter, 0, len(doc.spine))

	for _, idref := range doc.spine {
		href, ok := doc.manifest.get(idref)
		if !ok {
			continue
		}

		chapters = append(chapters, Chapter{
			Title:       fmt.Sprintf("Chapter %d", len(chapters)+1),
			ContentPath: path.Join(manifestDir, href),
		})
	}

	pkg := &Package{
		Title:         orDefault(doc.title, unknownTitle),
		Author:        orDefault(doc.author, unknownAuthor),
		Genre:         doc.genre(),
		Chapters:      chapters,
		RootDirectory: root,
		ManifestPath:  manifestPath,
	}

	if href, ok := coverHref(doc); ok {
		cover := path.Join(manifestDir, href)
		pkg.CoverImagePath = &cover
	}

	return pkg
}

// coverHref prefers the item named by the cover meta element. Otherwise the
// first manifest item whose id or href mentions "cover" and whose href names
// an image is used.
func coverHref(doc *opfDocument) (string, bool) {
	if doc.coverID != "" {
		if href, ok := doc.manifest.get(doc.coverID); ok {
			return href, true
		}
	}

	for _, id := range doc.manifest.order {
		href := doc.manifest.hrefs[id]

		mentionsCover := strings.Contains(strings.ToLower(id), "cover") ||
			strings.Contains(strings.ToLower(href), "cover")

		if mentionsCover && isImage(href) {
			return href, true
		}
	}

	return "", false
}

func isImage(href string) bool {
	return strings.HasSuffix(href, ".jpg") ||
		strings.HasSuffix(href, ".jpeg") ||
		strings.HasSuffix(href, ".png")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
