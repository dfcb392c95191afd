package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/bookmark/internal/apperr"
	"github.com/ayoisaiah/bookmark/internal/badge"
	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/export"
	"github.com/ayoisaiah/bookmark/internal/library"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/osutil"
	"github.com/ayoisaiah/bookmark/internal/pathutil"
	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/reader"
	"github.com/ayoisaiah/bookmark/report"
	"github.com/ayoisaiah/bookmark/stats"
	"github.com/ayoisaiah/bookmark/store"
)

const (
	envUpdateNotifier  = "BOOKMARK_UPDATE_NOTIFIER"
	envNoColor         = "NO_COLOR"
	envBookMarkNoColor = "BOOKMARK_NO_COLOR"
)

var (
	errBookArgRequired  = errors.New("specify a book title or the path to a book directory")
	errPathArgRequired  = errors.New("specify the path to an unpacked book directory")
	errSinceRequired    = errors.New("--since is required to add a session")
	errBookFlagRequired = errors.New("--book is required to add a session")
	errSingleBook       = errors.New("a session can only be added for one book at a time")
	errInvalidMinutes   = errors.New("enter a whole number of minutes")

	errInvalidSessionRange = &apperr.Error{
		Message: "a session must end after it starts (start: %s, end: %s)",
	}
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of BookMark from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/bookmark/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/bookmark/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of bookmark is available: %s at %s", version, resp.Request.URL.String())
	}
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

// withEnv loads the environment for a command and closes it afterwards.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		e, err := newEnv(ctx)
		if err != nil {
			return err
		}

		defer func() {
			err = errors.Join(err, e.close())
		}()

		return fn(ctx, e)
	}
}

// findBook resolves the first argument to a book in the library.
func findBook(ctx *cli.Context, e *env) (*epub.Package, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return nil, errBookArgRequired
	}

	return e.lib.Find(ctx.Context, arg)
}

// upsertBook records the book metadata and the time it was last opened.
func upsertBook(db store.DB, pkg *epub.Package, now time.Time) (*models.Book, error) {
	book, err := db.GetBook(pkg.Title)
	if err != nil && !errors.Is(err, store.ErrBookNotFound) {
		return nil, err
	}

	if book == nil {
		book = &models.Book{BookID: pkg.Title}
	}

	book.Title = pkg.Title
	book.Author = pkg.Author
	book.Genre = pkg.Genre
	book.Path = pkg.RootDirectory
	book.LastReadAt = now

	return book, db.UpdateBook(book)
}

// readAction opens a book in the reader and times the reading session.
func readAction(ctx *cli.Context, e *env) error {
	pkg, err := findBook(ctx, e)
	if err != nil {
		return err
	}

	_, err = upsertBook(e.db, pkg, time.Now())
	if err != nil {
		return err
	}

	tracker := session.NewTracker(
		e.db,
		session.WithLogger(e.logger),
		session.OnEnd(e.afterSession(pkg)),
	)

	sess, err := reader.New(
		pkg,
		tracker,
		e.db,
		reader.WithLogger(e.logger),
		reader.WithClockLayout(e.cfg.ClockLayout()),
	).Run(ctx.Context)
	if err != nil {
		report.Error(err)
	}

	report.SessionEnded(sess)

	return nil
}

// chaptersAction prints the chapter list of a book.
func chaptersAction(ctx *cli.Context, e *env) error {
	pkg, err := findBook(ctx, e)
	if err != nil {
		return err
	}

	if e.cfg.CLI.JSON {
		return printJSON(pkg)
	}

	printPackage(os.Stdout, pkg)

	return nil
}

// listLibrary scans and sorts the library.
func listLibrary(ctx context.Context, e *env) ([]*epub.Package, []models.Book, error) {
	books, err := e.lib.Scan(ctx)
	if err != nil {
		return nil, nil, err
	}

	records, err := e.db.ListBooks()
	if err != nil {
		return nil, nil, err
	}

	lastRead := make(map[string]time.Time, len(records))
	for i := range records {
		lastRead[records[i].BookID] = records[i].LastReadAt
	}

	library.Sort(books, e.cfg.Library.Sort, lastRead)

	return books, records, nil
}

func printLibrary(ctx context.Context, e *env) error {
	books, records, err := listLibrary(ctx, e)
	if err != nil {
		return err
	}

	if e.cfg.CLI.JSON {
		return printJSON(books)
	}

	progress := make(map[string]*models.Progress, len(books))

	for _, b := range books {
		p, err := e.db.GetProgress(b.Title)
		if err != nil {
			return err
		}

		progress[b.Title] = p
	}

	printLibraryTable(os.Stdout, books, records, progress)

	return nil
}

// libraryAction lists the books in the library, optionally watching it for
// changes until interrupted.
func libraryAction(ctx *cli.Context, e *env) error {
	err := printLibrary(ctx.Context, e)
	if err != nil || !ctx.Bool("watch") {
		return err
	}

	watchCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	pterm.Info.Printfln("Watching %s for changes. Press Ctrl-C to stop", e.lib.Dir())

	return e.lib.Watch(
		watchCtx,
		library.DefaultDebounce,
		func(_ []*epub.Package) {
			err := printLibrary(watchCtx, e)
			if err != nil {
				report.Error(err)
			}
		},
	)
}

// importAction copies an unpacked book into the library.
func importAction(ctx *cli.Context, e *env) error {
	src := ctx.Args().First()
	if src == "" {
		return errPathArgRequired
	}

	pkg, err := e.lib.Import(ctx.Context, src)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Added %s by %s to the library", pkg.Title, pkg.Author)

	return nil
}

// removeAction deletes a book from the library directory. Its reading
// history is kept.
func removeAction(ctx *cli.Context, e *env) error {
	pkg, err := findBook(ctx, e)
	if err != nil {
		return err
	}

	err = e.lib.Remove(ctx.Context, pkg)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Removed %s from the library", pkg.Title)

	return nil
}

// statsAction prints the reading statistics and goal progress.
func statsAction(ctx *cli.Context, e *env) error {
	engine := stats.NewEngine(e.db, nil)

	snap, err := engine.Recompute(ctx.Context)
	if err != nil {
		return err
	}

	goals, err := e.db.ListGoals()
	if err != nil {
		return err
	}

	finished, err := finishedBooks(e.db)
	if err != nil {
		return err
	}

	r := &stats.Report{
		Now:           engine.Now(),
		Goals:         goals,
		Snapshot:      snap,
		FinishedBooks: finished,
	}

	if e.cfg.CLI.JSON {
		return printJSON(r)
	}

	r.Render(os.Stdout)

	return nil
}

// badgesAction prints every badge and when it was earned.
func badgesAction(_ *cli.Context, e *env) error {
	earned, err := e.db.LoadEarnedBadges()
	if err != nil {
		return err
	}

	all := badge.All(earned)

	if e.cfg.CLI.JSON {
		return printJSON(all)
	}

	printBadges(os.Stdout, all)

	return nil
}

func filteredSessions(e *env) ([]session.ReadingSession, error) {
	return e.db.GetSessions(
		e.cfg.CLI.StartTime,
		e.cfg.CLI.EndTime,
		e.cfg.CLI.Books,
	)
}

// sessionsAction lists the sessions in the requested range.
func sessionsAction(_ *cli.Context, e *env) error {
	sessions, err := filteredSessions(e)
	if err != nil {
		return err
	}

	if e.cfg.CLI.JSON {
		return printJSON(sessions)
	}

	stats.List(os.Stdout, sessions)

	return nil
}

// deleteAction removes the sessions in the requested range after
// confirmation.
func deleteAction(_ *cli.Context, e *env) error {
	sessions, err := filteredSessions(e)
	if err != nil {
		return err
	}

	return stats.Delete(os.Stdout, os.Stdin, e.db, sessions)
}

// exportAction writes the sessions in the requested range as CSV or JSON.
func exportAction(ctx *cli.Context, e *env) error {
	format, err := export.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	sessions, err := filteredSessions(e)
	if err != nil {
		return err
	}

	output := ctx.String("output")
	if output == "" {
		return export.Write(os.Stdout, format, sessions)
	}

	err = export.ToFile(output, format, sessions)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Exported %d sessions to %s", len(sessions), output)

	return nil
}

// manualSession returns a finished session for book between start and end.
func manualSession(book string, start, end time.Time) (*session.ReadingSession, error) {
	if !end.After(start) {
		return nil, errInvalidSessionRange.Fmt(
			start.Format(time.RFC3339),
			end.Format(time.RFC3339),
		)
	}

	sess := session.New(book, start)
	sess.Finalize(end)

	return sess, nil
}

// addAction records a finished session in the past, from --since until
// --until or now.
func addAction(ctx *cli.Context, e *env) error {
	if ctx.String("since") == "" {
		return errSinceRequired
	}

	switch len(e.cfg.CLI.Books) {
	case 0:
		return errBookFlagRequired
	case 1:
	default:
		return errSingleBook
	}

	sess, err := manualSession(
		e.cfg.CLI.Books[0],
		e.cfg.CLI.StartTime,
		e.cfg.CLI.EndTime,
	)
	if err != nil {
		return err
	}

	err = e.db.AppendSession(sess)
	if err != nil {
		return err
	}

	report.SessionAdded(sess)

	e.afterSession(nil)(ctx.Context, sess)

	return nil
}

// lookupBook returns the stored record of a book. A book that was never
// opened is looked up in the library and recorded first.
func lookupBook(
	ctx context.Context,
	db store.DB,
	lib *library.Library,
	title string,
) (*models.Book, error) {
	book, err := db.GetBook(title)
	if !errors.Is(err, store.ErrBookNotFound) {
		return book, err
	}

	pkg, findErr := lib.Find(ctx, title)
	if findErr != nil {
		return nil, errors.Join(err, findErr)
	}

	return upsertBook(db, pkg, time.Now())
}

// finishAction marks a book as finished with an optional rating.
func finishAction(ctx *cli.Context, e *env) error {
	title := ctx.Args().First()
	if title == "" {
		return errBookArgRequired
	}

	book, err := lookupBook(ctx.Context, e.db, e.lib, title)
	if err != nil {
		return err
	}

	err = book.Finish(ctx.Int("rating"))
	if err != nil {
		return err
	}

	err = e.db.UpdateBook(book)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Marked %s as finished", book.Title)

	awarded, err := awardBadges(ctx.Context, e.db)
	if err != nil {
		return err
	}

	report.BadgesEarned(awarded)

	return nil
}

// promptGoals asks for the daily and weekly targets. Empty answers leave a
// target unchanged.
func promptGoals() (daily, weekly int, err error) {
	var dailyStr, weeklyStr string

	validate := func(s string) error {
		if s == "" {
			return nil
		}

		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return errInvalidMinutes
		}

		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily reading goal (minutes)").
				Placeholder("30").
				Validate(validate).
				Value(&dailyStr),
			huh.NewInput().
				Title("Weekly reading goal (minutes)").
				Placeholder("180").
				Validate(validate).
				Value(&weeklyStr),
		),
	)

	err = form.Run()
	if err != nil {
		return 0, 0, err
	}

	daily, _ = strconv.Atoi(dailyStr)
	weekly, _ = strconv.Atoi(weeklyStr)

	return daily, weekly, nil
}

// goalAction sets the daily and weekly reading goals from flags, or
// interactively when neither flag is given.
func goalAction(ctx *cli.Context, e *env) error {
	daily, weekly := ctx.Int("daily"), ctx.Int("weekly")

	if !ctx.IsSet("daily") && !ctx.IsSet("weekly") {
		var err error

		daily, weekly, err = promptGoals()
		if err != nil {
			return err
		}
	}

	now := time.Now()

	targets := []struct {
		t       models.GoalType
		minutes int
	}{
		{models.Daily, daily},
		{models.Weekly, weekly},
	}

	for _, target := range targets {
		if target.minutes <= 0 {
			continue
		}

		err := e.db.SaveGoal(&models.Goal{
			Type:          target.t,
			TargetMinutes: target.minutes,
			StartDate:     now,
		})
		if err != nil {
			return err
		}

		report.GoalSaved(string(target.t), target.minutes)
	}

	return nil
}

// editConfigAction handles the edit-config command which opens the bookmark
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/bookmark/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if BOOKMARK_NO_COLOR is set
	if _, exists := os.LookupEnv(envBookMarkNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting bookmark")

	return nil
}
