// Package session defines reading sessions and tracks the one in progress
package session

import (
	"time"

	"github.com/google/uuid"
)

// ReadingSession is one sitting with a book. An open session has no EndTime
// and a zero Duration.
type ReadingSession struct {
	EndTime   *time.Time    `json:"end_time,omitempty"`
	StartTime time.Time     `json:"start_time"`
	BookID    string        `json:"book_id"`
	Duration  time.Duration `json:"duration"`
	PagesRead int           `json:"pages_read"`
	ID        uuid.UUID     `json:"id"`
}

// New returns an open session for the book that started at start.
func New(bookID string, start time.Time) *ReadingSession {
	return &ReadingSession{
		ID:        uuid.New(),
		BookID:    bookID,
		StartTime: start,
	}
}

// Finalize closes the session at end.
func (s *ReadingSession) Finalize(end time.Time) {
	s.EndTime = &end
	s.Duration = end.Sub(s.StartTime)
}

// IsOpen reports whether the session has not been finalized.
func (s *ReadingSession) IsOpen() bool {
	return s.EndTime == nil
}
