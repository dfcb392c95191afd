package epub

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/bookmark/internal/testutil"
)

const container = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

func opf(metadata, manifest, spine string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">` + metadata + `</metadata>
  <manifest>` + manifest + `</manifest>
  <spine>` + spine + `</spine>
</package>`
}

func strPtr(s string) *string {
	return &s
}

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		files    map[string]string
		expected *Package
	}{
		{
			name: "spine order with unresolved idref",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					`<dc:title>Moby Dick</dc:title><dc:creator>Herman Melville</dc:creator>`,
					`<item id="c1" href="ch1.xhtml"/><item id="c3" href="text/ch3.xhtml"/>`,
					`<itemref idref="c1"/><itemref idref="c2"/><itemref idref="c3"/>`,
				),
			},
			expected: &Package{
				Title:        "Moby Dick",
				Author:       "Herman Melville",
				ManifestPath: "OEBPS/content.opf",
				Chapters: []Chapter{
					{Title: "Chapter 1", ContentPath: "OEBPS/ch1.xhtml"},
					{Title: "Chapter 2", ContentPath: "OEBPS/text/ch3.xhtml"},
				},
			},
		},
		{
			name: "duplicate spine entries are kept",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					`<dc:title>Loop</dc:title>`,
					`<item id="c1" href="a.xhtml"/><item id="c2" href="b.xhtml"/>`,
					`<itemref idref="c1"/><itemref idref="c2"/><itemref idref="c1"/>`,
				),
			},
			expected: &Package{
				Title:        "Loop",
				Author:       unknownAuthor,
				ManifestPath: "OEBPS/content.opf",
				Chapters: []Chapter{
					{Title: "Chapter 1", ContentPath: "OEBPS/a.xhtml"},
					{Title: "Chapter 2", ContentPath: "OEBPS/b.xhtml"},
					{Title: "Chapter 3", ContentPath: "OEBPS/a.xhtml"},
				},
			},
		},
		{
			name: "defaults and empty spine",
			files: map[string]string{
				ContainerPath:       container,
				"OEBPS/content.opf": opf("", "", ""),
			},
			expected: &Package{
				Title:        unknownTitle,
				Author:       unknownAuthor,
				ManifestPath: "OEBPS/content.opf",
				Chapters:     []Chapter{},
			},
		},
		{
			name: "cover from meta element",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					`<meta name="cover" content="img1"/>`,
					`<item id="cover-image" href="images/other-cover.png"/><item id="img1" href="images/cover.jpg"/>`,
					"",
				),
			},
			expected: &Package{
				Title:          unknownTitle,
				Author:         unknownAuthor,
				CoverImagePath: strPtr("OEBPS/images/cover.jpg"),
				ManifestPath:   "OEBPS/content.opf",
				Chapters:       []Chapter{},
			},
		},
		{
			name: "cover fallback by name",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					`<meta name="cover" content="missing"/>`,
					`<item id="css" href="style.css"/>`+
						`<item id="CoverPage" href="cover.xhtml"/>`+
						`<item id="front" href="img/Cover.jpeg"/>`+
						`<item id="back" href="img/cover-back.png"/>`,
					"",
				),
			},
			expected: &Package{
				Title:          unknownTitle,
				Author:         unknownAuthor,
				CoverImagePath: strPtr("OEBPS/img/Cover.jpeg"),
				ManifestPath:   "OEBPS/content.opf",
				Chapters:       []Chapter{},
			},
		},
		{
			name: "image suffix is case sensitive",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					"",
					`<item id="cover" href="cover.JPG"/>`,
					"",
				),
			},
			expected: &Package{
				Title:        unknownTitle,
				Author:       unknownAuthor,
				ManifestPath: "OEBPS/content.opf",
				Chapters:     []Chapter{},
			},
		},
		{
			name: "subjects joined and text nodes concatenated",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					`<dc:title>
					  War <!-- split -->
					  and Peace
					</dc:title>
					<dc:subject>Fiction</dc:subject><dc:subject> History </dc:subject>`,
					"",
					"",
				),
			},
			expected: &Package{
				Title:        "Warand Peace",
				Author:       unknownAuthor,
				Genre:        strPtr("Fiction, History"),
				ManifestPath: "OEBPS/content.opf",
				Chapters:     []Chapter{},
			},
		},
		{
			name: "camel-cased fullPath and manifest at root",
			files: map[string]string{
				ContainerPath: `<container><rootfiles><RootFile fullPath="book.opf"/></rootfiles></container>`,
				"book.opf": opf(
					"",
					`<item id="c1" href="ch1.xhtml"/>`,
					`<itemref idref="c1"/>`,
				),
			},
			expected: &Package{
				Title:        unknownTitle,
				Author:       unknownAuthor,
				ManifestPath: "book.opf",
				Chapters: []Chapter{
					{Title: "Chapter 1", ContentPath: "ch1.xhtml"},
				},
			},
		},
		{
			name: "dc prefix bound to a variant uri",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1" version="2.0">
  <metadata>
    <dc:title>Moby Dick</dc:title>
    <dc:creator>Herman Melville</dc:creator>
    <dc:subject>Adventure</dc:subject>
  </metadata>
  <manifest/>
  <spine/>
</package>`,
			},
			expected: &Package{
				Title:        "Moby Dick",
				Author:       "Herman Melville",
				Genre:        strPtr("Adventure"),
				ManifestPath: "OEBPS/content.opf",
				Chapters:     []Chapter{},
			},
		},
		{
			name: "title in another namespace is ignored",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					`<x:title xmlns:x="urn:example:other">Not a title</x:title>`,
					"",
					"",
				),
			},
			expected: &Package{
				Title:        unknownTitle,
				Author:       unknownAuthor,
				ManifestPath: "OEBPS/content.opf",
				Chapters:     []Chapter{},
			},
		},
		{
			name: "last manifest entry wins",
			files: map[string]string{
				ContainerPath: container,
				"OEBPS/content.opf": opf(
					"",
					`<item id="c1" href="old.xhtml"/><item id="c1" href="new.xhtml"/>`,
					`<itemref idref="c1"/>`,
				),
			},
			expected: &Package{
				Title:        unknownTitle,
				Author:       unknownAuthor,
				ManifestPath: "OEBPS/content.opf",
				Chapters: []Chapter{
					{Title: "Chapter 1", ContentPath: "OEBPS/new.xhtml"},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteTree(t, tc.files)

			got, err := Parse(root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tc.expected.RootDirectory = root

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name     string
		files    map[string]string
		expected error
	}{
		{
			name:     "missing container",
			files:    map[string]string{"OEBPS/content.opf": opf("", "", "")},
			expected: ErrManifestNotFound,
		},
		{
			name: "rootfile without full-path",
			files: map[string]string{
				ContainerPath: `<container><rootfiles><rootfile/></rootfiles></container>`,
			},
			expected: ErrRootfileNotFound,
		},
		{
			name: "malformed container",
			files: map[string]string{
				ContainerPath: `<container><rootfiles>`,
			},
			expected: ErrRootfileNotFound,
		},
		{
			name: "manifest file missing",
			files: map[string]string{
				ContainerPath: container,
			},
			expected: ErrManifestUnreadable,
		},
		{
			name: "malformed manifest",
			files: map[string]string{
				ContainerPath:       container,
				"OEBPS/content.opf": `<package><metadata></package>`,
			},
			expected: ErrManifestUnreadable,
		},
		{
			name: "empty manifest",
			files: map[string]string{
				ContainerPath:       container,
				"OEBPS/content.opf": "",
			},
			expected: ErrManifestUnreadable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteTree(t, tc.files)

			_, err := Parse(root)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestFindRootfileFirstMatch(t *testing.T) {
	r := strings.NewReader(`<container><rootfiles>
		<opf:rootfile xmlns:opf="urn:x" full-path="first.opf"/>
		<rootfile full-path="second.opf"/>
	</rootfiles></container>`)

	got, err := findRootfile(r)
	if err != nil {
		t.Fatal(err)
	}

	if got != "first.opf" {
		t.Errorf("expected first.opf, got %s", got)
	}
}

func TestPackageAbs(t *testing.T) {
	pkg := &Package{RootDirectory: filepath.Join("books", "moby")}

	got := pkg.Abs("OEBPS/ch1.xhtml")
	expected := filepath.Join("books", "moby", "OEBPS", "ch1.xhtml")

	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}

	if _, ok := pkg.Chapter(0); ok {
		t.Error("expected no chapter in an empty package")
	}
}
