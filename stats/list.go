package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
	"github.com/ayoisaiah/bookmark/internal/ui"
)

const (
	noSessionsMsg = "No reading sessions found"
	tableLayout   = "January 02, 2006 03:04 PM"
)

func sessionsTable(sessions []session.ReadingSession) [][]string {
	data := [][]string{
		{"#", "BOOK", "START DATE", "END DATE", "DURATION", "PAGES"},
	}

	for i := range sessions {
		sess := &sessions[i]

		endDate := ui.Red("in progress")
		if sess.EndTime != nil {
			endDate = sess.EndTime.Format(tableLayout)
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			sess.BookID,
			sess.StartTime.Format(tableLayout),
			endDate,
			ui.Green(timeutil.FormatDuration(sess.Duration)),
			fmt.Sprintf("%d", sess.PagesRead),
		})
	}

	return data
}

// List prints a table of sessions.
func List(w io.Writer, sessions []session.ReadingSession) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	ui.PrintTable(sessionsTable(sessions), w)
}
