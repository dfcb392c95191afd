package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Sessions   []jsonEntry `json:"sessions"`
	Count      int         `json:"count"`
}

type jsonEntry struct {
	ID          string `json:"id"`
	Book        string `json:"book"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	Duration    string `json:"duration"`
	DurationSec int64  `json:"duration_seconds"`
	PagesRead   int    `json:"pages_read"`
}

func writeJSON(w io.Writer, sessions []session.ReadingSession, now time.Time) error {
	export := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(sessions),
		Sessions:   make([]jsonEntry, 0, len(sessions)),
	}

	for i := range sessions {
		sess := &sessions[i]

		export.Sessions = append(export.Sessions, jsonEntry{
			ID:          sess.ID.String(),
			Book:        sess.BookID,
			StartTime:   sess.StartTime.Local().Format(time.RFC3339),
			EndTime:     endTime(sess),
			DurationSec: int64(sess.Duration.Seconds()),
			Duration:    timeutil.FormatDuration(sess.Duration),
			PagesRead:   sess.PagesRead,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}
