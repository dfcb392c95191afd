package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/bookmark/internal/apperr"
	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/store"
)

const noHighlightsMsg = "No highlights found"

var (
	errChapterOutOfRange = &apperr.Error{
		Message: "%s has no chapter %d (it has %d)",
	}

	errHighlightIDRequired = &apperr.Error{
		Message: "specify the id of a highlight as shown by the notes command",
	}
)

// resolveChapter returns the zero-based chapter a highlight belongs to. A
// chapter number given on the command line is 1-based; otherwise the saved
// reading position is used.
func resolveChapter(
	pkg *epub.Package,
	number int,
	isSet bool,
	progress *models.Progress,
) (int, error) {
	index := 0

	switch {
	case isSet:
		index = number - 1
	case progress != nil:
		index = progress.CurrentChapter
	}

	if _, ok := pkg.Chapter(index); !ok {
		return 0, errChapterOutOfRange.Fmt(pkg.Title, index+1, len(pkg.Chapters))
	}

	return index, nil
}

// highlightFilter builds the notes filter from the command flags.
func highlightFilter(ctx *cli.Context, e *env) models.HighlightFilter {
	return models.HighlightFilter{
		Books: e.cfg.CLI.Books,
		Tags:  models.ParseTags(ctx.String("tag")),
		Query: ctx.String("search"),
	}
}

// highlightAddAction saves a passage of a book with an optional note.
func highlightAddAction(ctx *cli.Context, e *env) error {
	pkg, err := findBook(ctx, e)
	if err != nil {
		return err
	}

	color, err := models.ParseColor(ctx.String("color"))
	if err != nil {
		return err
	}

	progress, err := e.db.GetProgress(pkg.Title)
	if err != nil {
		return err
	}

	index, err := resolveChapter(pkg, ctx.Int("chapter"), ctx.IsSet("chapter"), progress)
	if err != nil {
		return err
	}

	now := time.Now()

	h, err := models.NewHighlight(pkg.Title, index, ctx.String("text"), color, now)
	if err != nil {
		return err
	}

	h.SetNote(ctx.String("note"), models.ParseTags(ctx.String("tag")), now)

	err = e.db.SaveHighlight(h)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Highlighted a passage in %s of %s (id %s)",
		pkg.Chapters[index].Title,
		pkg.Title,
		shortID(h),
	)

	return nil
}

// editHighlight applies the flags that were given to h.
func editHighlight(ctx *cli.Context, h *models.Highlight, now time.Time) error {
	if ctx.IsSet("color") {
		color, err := models.ParseColor(ctx.String("color"))
		if err != nil {
			return err
		}

		h.Color = color
	}

	if !ctx.IsSet("note") && !ctx.IsSet("tag") {
		return nil
	}

	var content string
	if h.Note != nil {
		content = h.Note.Content
	}

	tags := h.Tags()

	if ctx.IsSet("note") {
		content = ctx.String("note")
	}

	if ctx.IsSet("tag") {
		tags = models.ParseTags(ctx.String("tag"))
	}

	h.SetNote(content, tags, now)

	return nil
}

// highlightEditAction changes the colour, note or tags of a highlight.
func highlightEditAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errHighlightIDRequired
	}

	h, err := e.db.GetHighlight(id)
	if err != nil {
		return err
	}

	err = editHighlight(ctx, h, time.Now())
	if err != nil {
		return err
	}

	err = e.db.SaveHighlight(h)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Updated highlight %s", shortID(h))

	return nil
}

// notesAction lists the matching highlights and their notes.
func notesAction(ctx *cli.Context, e *env) error {
	hs, err := e.db.ListHighlights(highlightFilter(ctx, e))
	if err != nil {
		return err
	}

	groups, err := models.GroupHighlights(hs, ctx.String("group"))
	if err != nil {
		return err
	}

	if e.cfg.CLI.JSON {
		if len(groups) == 1 && groups[0].Key == "" {
			return printJSON(hs)
		}

		return printJSON(groups)
	}

	if len(hs) == 0 {
		pterm.Info.Println(noHighlightsMsg)
		return nil
	}

	printNotes(os.Stdout, groups)

	return nil
}

// deleteHighlights lists hs and removes them once the user confirms by
// pressing ENTER on in.
func deleteHighlights(
	out io.Writer,
	in io.Reader,
	db store.DB,
	hs []models.Highlight,
) error {
	if len(hs) == 0 {
		pterm.Info.Println(noHighlightsMsg)
		return nil
	}

	printNotes(out, []models.HighlightGroup{{Highlights: hs}})

	fmt.Fprint(out, pterm.Warning.Sprint(
		"The above highlights and their notes will be deleted permanently. Press ENTER to proceed",
	))

	_, _ = bufio.NewReader(in).ReadString('\n')

	return db.DeleteHighlights(hs)
}

// notesDeleteAction removes the matching highlights after confirmation.
func notesDeleteAction(ctx *cli.Context, e *env) error {
	hs, err := e.db.ListHighlights(highlightFilter(ctx, e))
	if err != nil {
		return err
	}

	return deleteHighlights(os.Stdout, os.Stdin, e.db, hs)
}

// notesTagsAction lists every tag in use and how often.
func notesTagsAction(_ *cli.Context, e *env) error {
	hs, err := e.db.ListHighlights(models.HighlightFilter{})
	if err != nil {
		return err
	}

	counts := models.CountTags(hs)

	if e.cfg.CLI.JSON {
		return printJSON(counts)
	}

	if len(counts) == 0 {
		pterm.Info.Println("No tags found")
		return nil
	}

	printTags(os.Stdout, counts)

	return nil
}
