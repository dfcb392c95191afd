package epub

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"
)

const dcNamespace = "http://purl.org/dc/elements/1.1/"

// manifest maps manifest item ids to hrefs. order keeps ids in the order they
// were first seen so that lookups which scan the manifest are deterministic.
type manifest struct {
	hrefs map[string]string
	order []string
}

func (m *manifest) set(id, href string) {
	if _, ok := m.hrefs[id]; !ok {
		m.order = append(m.order, id)
	}

	m.hrefs[id] = href
}

func (m *manifest) get(id string) (string, bool) {
	href, ok := m.hrefs[id]
	return href, ok
}

// opfDocument holds everything collected from a package manifest in a single
// pass.
type opfDocument struct {
	manifest manifest
	spine    []string
	coverID  string
	title    string
	author   string
	subjects []string
}

func (d *opfDocument) genre() *string {
	if len(d.subjects) == 0 {
		return nil
	}

	g := strings.Join(d.subjects, ", ")

	return &g
}

// parseManifest opens and decodes the package manifest at path.
func parseManifest(path string) (*opfDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrManifestUnreadable.Fmt(path).Wrap(err)
	}
	defer f.Close()

	doc, err := decodeManifest(f)
	if err != nil {
		return nil, ErrManifestUnreadable.Fmt(path).Wrap(err)
	}

	return doc, nil
}

func decodeManifest(r io.Reader) (*opfDocument, error) {
	doc := &opfDocument{
		manifest: manifest{hrefs: make(map[string]string)},
	}

	decoder := newDecoder(r)

	var (
		open    []openElement
		sawRoot bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawRoot = true

			el := openElement{name: t.Name}
			if len(open) > 0 {
				el.dcURI = open[len(open)-1].dcURI
			}

			if uri, ok := dcBinding(t); ok {
				el.dcURI = uri
			}

			open = append(open, el)
			doc.visit(t)
		case xml.EndElement:
			open = open[:len(open)-1]
		case xml.CharData:
			if len(open) > 0 {
				doc.text(open[len(open)-1], string(t))
			}
		}
	}

	if !sawRoot {
		return nil, errNoRootElement
	}

	return doc, nil
}

func (d *opfDocument) visit(el xml.StartElement) {
	switch el.Name.Local {
	case "item":
		id, hasID := attr(el, "id")
		href, hasHref := attr(el, "href")

		if hasID && hasHref {
			d.manifest.set(id, href)
		}
	case "itemref":
		if idref, ok := attr(el, "idref"); ok {
			d.spine = append(d.spine, idref)
		}
	case "meta":
		name, _ := attr(el, "name")
		if name != "cover" {
			return
		}

		if content, ok := attr(el, "content"); ok {
			d.coverID = content
		}
	}
}

// openElement is an element whose end tag has not been seen yet. dcURI is
// the namespace the dc prefix is bound to in its scope.
type openElement struct {
	name  xml.Name
	dcURI string
}

// isDublinCore reports whether the element is in the Dublin Core namespace or
// was written with the dc prefix, whatever URI that prefix is bound to.
func (e openElement) isDublinCore() bool {
	switch e.name.Space {
	case dcNamespace, "dc":
		return true
	case "":
		return false
	}

	return e.name.Space == e.dcURI
}

// dcBinding returns the URI of an xmlns:dc declaration on el.
func dcBinding(el xml.StartElement) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Space == "xmlns" && a.Name.Local == "dc" {
			return a.Value, true
		}
	}

	return "", false
}

// text accumulates character data found directly inside a Dublin Core
// title, creator or subject element.
func (d *opfDocument) text(el openElement, s string) {
	if !el.isDublinCore() {
		return
	}

	data := strings.TrimSpace(s)
	if data == "" {
		return
	}

	switch el.name.Local {
	case "title":
		d.title += data
	case "creator":
		d.author += data
	case "subject":
		d.subjects = append(d.subjects, data)
	}
}
