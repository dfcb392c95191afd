package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Color is the marker colour of a highlight.
type Color string

const (
	Yellow Color = "yellow"
	Green  Color = "green"
	Pink   Color = "pink"
)

// Colors lists the supported highlight colours. The first is the default.
var Colors = []Color{Yellow, Green, Pink}

var (
	errEmptyHighlight  = errors.New("highlighted text cannot be empty")
	errInvalidChapter  = errors.New("chapter index cannot be negative")
	errUnknownColor    = errors.New("unknown highlight color")
	errUnknownGrouping = errors.New("unknown grouping")
)

// ParseColor accepts a colour name in any case. An empty name selects the
// default colour.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Colors[0], nil
	}

	c := Color(s)
	if !slices.Contains(Colors, c) {
		return "", fmt.Errorf("%w %q (expected one of %v)", errUnknownColor, s, Colors)
	}

	return c, nil
}

// Note is the user's comment on a highlight.
type Note struct {
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	ID        uuid.UUID `json:"id"`
}

// Highlight is a marked passage of a book. ChapterIndex is zero-based and
// BookID is the book title.
type Highlight struct {
	CreatedAt    time.Time `json:"created_at"`
	Note         *Note     `json:"note,omitempty"`
	BookID       string    `json:"book_id"`
	SelectedText string    `json:"selected_text"`
	Color        Color     `json:"color"`
	ChapterIndex int       `json:"chapter_index"`
	ID           uuid.UUID `json:"id"`
}

func NewHighlight(
	bookID string,
	chapterIndex int,
	text string,
	color Color,
	now time.Time,
) (*Highlight, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyHighlight
	}

	if chapterIndex < 0 {
		return nil, errInvalidChapter
	}

	return &Highlight{
		ID:           uuid.New(),
		BookID:       bookID,
		ChapterIndex: chapterIndex,
		SelectedText: text,
		Color:        color,
		CreatedAt:    now,
	}, nil
}

// SetNote attaches a note to the highlight or updates the existing one. A new
// note is only created when it has content or tags.
func (h *Highlight) SetNote(content string, tags []string, now time.Time) {
	content = strings.TrimSpace(content)

	if h.Note == nil {
		if content == "" && len(tags) == 0 {
			return
		}

		h.Note = &Note{ID: uuid.New()}
	}

	h.Note.Content = content
	h.Note.Tags = tags
	h.Note.CreatedAt = now
}

// Tags returns the tags of the highlight's note.
func (h *Highlight) Tags() []string {
	if h.Note == nil {
		return nil
	}

	return h.Note.Tags
}

// ParseTags splits a comma-separated list. Blank entries are dropped and
// repeated tags are kept once, compared without regard to case.
func ParseTags(s string) []string {
	var tags []string

	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		dup := slices.ContainsFunc(tags, func(t string) bool {
			return strings.EqualFold(t, tag)
		})
		if !dup {
			tags = append(tags, tag)
		}
	}

	return tags
}

// HighlightFilter selects highlights. Empty fields match everything.
type HighlightFilter struct {
	// Query is searched for in the highlighted text, the note and the book
	// title, ignoring case.
	Query string
	// Books matches exact titles.
	Books []string
	// Tags matches highlights carrying at least one of the tags, ignoring
	// case.
	Tags []string
}

func (f *HighlightFilter) Match(h *Highlight) bool {
	if len(f.Books) > 0 && !slices.Contains(f.Books, h.BookID) {
		return false
	}

	if len(f.Tags) > 0 && !hasAnyTag(h.Tags(), f.Tags) {
		return false
	}

	if f.Query == "" {
		return true
	}

	q := strings.ToLower(f.Query)

	fields := []string{h.SelectedText, h.BookID}
	if h.Note != nil {
		fields = append(fields, h.Note.Content)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}

	return false
}

// TagCount is a tag and the number of highlights carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CountTags returns every tag used in hs in alphabetical order. Tags that
// differ only in case are counted together under their first spelling.
func CountTags(hs []Highlight) []TagCount {
	var counts []TagCount

	index := make(map[string]int)

	for i := range hs {
		for _, tag := range hs[i].Tags() {
			key := strings.ToLower(tag)

			if j, ok := index[key]; ok {
				counts[j].Count++
				continue
			}

			index[key] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}

	slices.SortFunc(counts, func(a, b TagCount) int {
		return strings.Compare(strings.ToLower(a.Tag), strings.ToLower(b.Tag))
	})

	return counts
}

// Highlight groupings.
const (
	GroupNone = "none"
	GroupBook = "book"
	GroupDate = "date"
)

// HighlightGroup is a run of highlights sharing a book or a creation day.
type HighlightGroup struct {
	Key        string      `json:"key"`
	Highlights []Highlight `json:"highlights"`
}

const groupDateLayout = "2006-01-02"

// GroupHighlights splits hs by book title (alphabetical) or by local
// creation day (most recent first). Order within a group is kept. With
// GroupNone all highlights form a single group with an empty key.
func GroupHighlights(hs []Highlight, by string) ([]HighlightGroup, error) {
	var keyOf func(h *Highlight) string

	switch by {
	case GroupNone, "":
		return []HighlightGroup{{Highlights: hs}}, nil
	case GroupBook:
		keyOf = func(h *Highlight) string { return h.BookID }
	case GroupDate:
		keyOf = func(h *Highlight) string {
			return h.CreatedAt.Local().Format(groupDateLayout)
		}
	default:
		return nil, fmt.Errorf("%w %q (expected none, book or date)", errUnknownGrouping, by)
	}

	var groups []HighlightGroup

	index := make(map[string]int)

	for i := range hs {
		key := keyOf(&hs[i])

		j, ok := index[key]
		if !ok {
			j = len(groups)
			index[key] = j
			groups = append(groups, HighlightGroup{Key: key})
		}

		groups[j].Highlights = append(groups[j].Highlights, hs[i])
	}

	slices.SortStableFunc(groups, func(a, b HighlightGroup) int {
		if by == GroupDate {
			return strings.Compare(b.Key, a.Key)
		}

		return strings.Compare(a.Key, b.Key)
	})

	return groups, nil
}
