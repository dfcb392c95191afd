// Package export writes reading sessions to CSV and JSON files
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ayoisaiah/bookmark/internal/apperr"
	"github.com/ayoisaiah/bookmark/internal/session"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

var errUnknownFormat = &apperr.Error{
	Message: "unknown export format %q (expected csv or json)",
}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON:
		return f, nil
	}

	return "", errUnknownFormat.Fmt(s)
}

// Write encodes sessions in the given format to w.
func Write(w io.Writer, f Format, sessions []session.ReadingSession) error {
	switch f {
	case CSV:
		return writeCSV(w, sessions)
	case JSON:
		return writeJSON(w, sessions, time.Now())
	}

	return errUnknownFormat.Fmt(f)
}

// ToFile writes sessions to the file at path, replacing it if it exists.
func ToFile(path string, f Format, sessions []session.ReadingSession) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s file: %w", f, err)
	}
	defer file.Close()

	err = Write(file, f, sessions)
	if err != nil {
		return err
	}

	return file.Close()
}

func endTime(sess *session.ReadingSession) string {
	if sess.EndTime == nil {
		return ""
	}

	return sess.EndTime.Local().Format(time.RFC3339)
}
