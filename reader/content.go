package reader

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blocks end the current paragraph.
var blocks = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Li:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Blockquote: true,
	atom.Section:    true,
	atom.Tr:         true,
	atom.Hr:         true,
}

// skipped elements contribute no text.
var skipped = map[atom.Atom]bool{
	atom.Head:   true,
	atom.Script: true,
	atom.Style:  true,
	atom.Title:  true,
}

// LoadChapter reads a chapter document and returns its text.
func LoadChapter(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return PlainText(f)
}

// PlainText extracts the readable text of an XHTML document. Whitespace
// runs collapse to a single space and block elements separate paragraphs
// with a blank line.
func PlainText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)

	var (
		paragraphs []string
		current    strings.Builder
		skipDepth  int
	)

	flush := func() {
		p := strings.Join(strings.Fields(current.String()), " ")
		if p != "" {
			paragraphs = append(paragraphs, p)
		}

		current.Reset()
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}

			flush()

			return strings.Join(paragraphs, "\n\n"), nil
		case html.StartTagToken:
			tok := z.Token()
			if skipped[tok.DataAtom] {
				skipDepth++
				continue
			}

			if blocks[tok.DataAtom] {
				flush()
			}
		case html.EndTagToken:
			tok := z.Token()
			if skipped[tok.DataAtom] {
				if skipDepth > 0 {
					skipDepth--
				}

				continue
			}

			if blocks[tok.DataAtom] {
				flush()
			}
		case html.SelfClosingTagToken:
			if blocks[z.Token().DataAtom] {
				flush()
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}

			current.Write(z.Text())
		}
	}
}
