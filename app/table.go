package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/bookmark/internal/badge"
	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/ui"
)

const (
	dateLayout   = "Jan 02, 2006"
	emptyLibrary = "The library is empty. Add books with 'bookmark library import <dir>'"
)

func libraryTable(
	books []*epub.Package,
	records []models.Book,
	progress map[string]*models.Progress,
) [][]string {
	byID := make(map[string]*models.Book, len(records))
	for i := range records {
		byID[records[i].BookID] = &records[i]
	}

	data := [][]string{
		{"#", "TITLE", "AUTHOR", "GENRE", "CHAPTERS", "PROGRESS", "LAST READ"},
	}

	for i, b := range books {
		genre := ""
		if b.Genre != nil {
			genre = *b.Genre
		}

		percent := "-"
		if p := progress[b.Title]; p != nil {
			percent = fmt.Sprintf("%d%%", p.Percentage())
		}

		lastRead := ""

		if rec, ok := byID[b.Title]; ok {
			if !rec.LastReadAt.IsZero() {
				lastRead = rec.LastReadAt.Format(dateLayout)
			}

			if rec.IsFinished {
				percent = ui.Green("finished")
			}
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			b.Title,
			b.Author,
			genre,
			fmt.Sprintf("%d", len(b.Chapters)),
			percent,
			lastRead,
		})
	}

	return data
}

func printLibraryTable(
	w io.Writer,
	books []*epub.Package,
	records []models.Book,
	progress map[string]*models.Progress,
) {
	if len(books) == 0 {
		pterm.Info.Println(emptyLibrary)
		return
	}

	ui.PrintTable(libraryTable(books, records, progress), w)
}

func badgesTable(all []badge.Badge) [][]string {
	data := [][]string{
		{"BADGE", "DESCRIPTION", "EARNED"},
	}

	for i := range all {
		b := &all[i]

		earned := ui.Red("locked")
		if b.IsEarned() {
			earned = ui.Green(b.EarnedDate.Format(dateLayout))
		}

		data = append(data, []string{
			b.Kind.Title(),
			b.Kind.Description(),
			earned,
		})
	}

	return data
}

func printBadges(w io.Writer, all []badge.Badge) {
	ui.PrintTable(badgesTable(all), w)
}

func chaptersTable(pkg *epub.Package) [][]string {
	data := [][]string{
		{"#", "TITLE", "PATH"},
	}

	for i, ch := range pkg.Chapters {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			ch.Title,
			ch.ContentPath,
		})
	}

	return data
}

// printPackage prints the book metadata followed by its chapters.
func printPackage(w io.Writer, pkg *epub.Package) {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%s by %s\n", ui.Blue(pkg.Title), pkg.Author))

	if pkg.Genre != nil {
		s.WriteString(fmt.Sprintf("Genre: %s\n", *pkg.Genre))
	}

	if pkg.CoverImagePath != nil {
		s.WriteString(fmt.Sprintf("Cover: %s\n", pkg.Abs(*pkg.CoverImagePath)))
	}

	fmt.Fprintln(w, s.String())

	if len(pkg.Chapters) == 0 {
		pterm.Info.Println("This book has no chapters")
		return
	}

	ui.PrintTable(chaptersTable(pkg), w)
}

const (
	shortIDLen    = 8
	maxPassageLen = 60
)

func shortID(h *models.Highlight) string {
	return h.ID.String()[:shortIDLen]
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= n {
		return string(r)
	}

	return string(r[:n-1]) + "…"
}

func colorize(c models.Color, s string) string {
	switch c {
	case models.Green:
		return ui.Green(s)
	case models.Pink:
		return ui.Magenta(s)
	default:
		return ui.Yellow(s)
	}
}

func formatTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}

	return strings.Join(out, " ")
}

func notesTable(hs []models.Highlight) [][]string {
	data := [][]string{
		{"ID", "BOOK", "CHAPTER", "PASSAGE", "NOTE", "TAGS", "CREATED"},
	}

	for i := range hs {
		h := &hs[i]

		var note string
		if h.Note != nil {
			note = truncate(h.Note.Content, maxPassageLen)
		}

		data = append(data, []string{
			shortID(h),
			h.BookID,
			fmt.Sprintf("Chapter %d", h.ChapterIndex+1),
			colorize(h.Color, truncate(h.SelectedText, maxPassageLen)),
			note,
			formatTags(h.Tags()),
			h.CreatedAt.Format(dateLayout),
		})
	}

	return data
}

// printNotes prints one table per group, headed by the group key when there
// is one.
func printNotes(w io.Writer, groups []models.HighlightGroup) {
	for i := range groups {
		if groups[i].Key != "" {
			fmt.Fprintf(w, "\n%s\n", ui.Blue(groups[i].Key))
		}

		ui.PrintTable(notesTable(groups[i].Highlights), w)
	}
}

func tagsTable(counts []models.TagCount) [][]string {
	data := [][]string{
		{"TAG", "HIGHLIGHTS"},
	}

	for _, c := range counts {
		data = append(data, []string{
			"#" + c.Tag,
			fmt.Sprintf("%d", c.Count),
		})
	}

	return data
}

func printTags(w io.Writer, counts []models.TagCount) {
	ui.PrintTable(tagsTable(counts), w)
}
