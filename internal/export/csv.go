package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
)

func writeCSV(out io.Writer, sessions []session.ReadingSession) error {
	w := csv.NewWriter(out)

	// Header
	err := w.Write([]string{
		"ID", "Book", "Start", "End", "Duration (s)", "Duration", "Pages",
	})
	if err != nil {
		return err
	}

	for i := range sessions {
		sess := &sessions[i]

		row := []string{
			sess.ID.String(),
			sess.BookID,
			sess.StartTime.Local().Format(time.RFC3339),
			endTime(sess),
			fmt.Sprintf("%d", int64(sess.Duration.Seconds())),
			timeutil.FormatDuration(sess.Duration),
			fmt.Sprintf("%d", sess.PagesRead),
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
