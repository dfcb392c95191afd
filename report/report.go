// Package report prints the outcome of commands to the console.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/bookmark/internal/badge"
	"github.com/ayoisaiah/bookmark/internal/osutil"
	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
	"github.com/ayoisaiah/bookmark/internal/ui"
)

func SessionAdded(sess *session.ReadingSession) {
	pterm.Info.Printfln(
		"session added: %s for %s",
		ui.Green(timeutil.FormatDuration(sess.Duration)),
		sess.BookID,
	)
}

// SessionEnded summarises a finished reading session.
func SessionEnded(sess *session.ReadingSession) {
	if sess == nil {
		return
	}

	pterm.Success.Printfln(
		"You read %s for %s (%d pages)",
		sess.BookID,
		ui.Green(timeutil.FormatDuration(sess.Duration)),
		sess.PagesRead,
	)
}

// BadgesEarned announces newly awarded badges.
func BadgesEarned(bs []badge.Badge) {
	for i := range bs {
		pterm.Success.Printfln(
			"New badge: %s (%s)",
			ui.Magenta(bs[i].Kind.Title()),
			bs[i].Kind.Description(),
		)
	}
}

func GoalSaved(goalType string, minutes int) {
	pterm.Info.Printfln("%s goal set to %d minutes", goalType, minutes)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Warn(err error) {
	pterm.Warning.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
