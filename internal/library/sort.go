package library

import (
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/bookmark/internal/config"
	"github.com/ayoisaiah/bookmark/internal/epub"
)

// Sort orders books in place. Recently read books come first with
// never-read books last; title and author orders are natural and
// case-insensitive. lastRead is keyed by book title.
func Sort(books []*epub.Package, by string, lastRead map[string]time.Time) {
	slices.SortStableFunc(books, func(a, b *epub.Package) int {
		switch by {
		case config.SortRecent:
			return lastRead[b.Title].Compare(lastRead[a.Title])
		case config.SortAuthor:
			return compareNatural(a.Author, b.Author)
		default:
			return compareNatural(a.Title, b.Title)
		}
	})
}

func compareNatural(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)

	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}
