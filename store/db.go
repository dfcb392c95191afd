package store

import (
	"time"

	"github.com/ayoisaiah/bookmark/internal/badge"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/session"
)

// DB is the database storage interface.
type DB interface {
	// AppendSession saves a reading session. The open and finalized forms of
	// a session share a key, so the latter replaces the former.
	AppendSession(sess *session.ReadingSession) error
	// ListSessions returns every saved session ordered by start time
	ListSessions() ([]session.ReadingSession, error)
	// GetSessions returns saved sessions that overlap the time range and,
	// if books is not empty, belong to one of the books
	GetSessions(
		startTime, endTime time.Time,
		books []string,
	) ([]session.ReadingSession, error)
	// DeleteSessions deletes one or more saved sessions
	DeleteSessions(sessions []session.ReadingSession) error
	LoadEarnedBadges() ([]badge.Badge, error)
	SaveEarnedBadges(badges []badge.Badge) error
	// GetBook returns ErrBookNotFound if the book was never opened
	GetBook(bookID string) (*models.Book, error)
	UpdateBook(book *models.Book) error
	ListBooks() ([]models.Book, error)
	// GetProgress returns nil if no position was saved for the book
	GetProgress(bookID string) (*models.Progress, error)
	SaveProgress(p *models.Progress) error
	ListGoals() ([]models.Goal, error)
	// SaveGoal replaces the goal of the same type
	SaveGoal(g *models.Goal) error
	SaveHighlight(h *models.Highlight) error
	// ListHighlights returns matching highlights, newest first
	ListHighlights(filter models.HighlightFilter) ([]models.Highlight, error)
	// GetHighlight finds a highlight by a unique id prefix
	GetHighlight(prefix string) (*models.Highlight, error)
	DeleteHighlights(hs []models.Highlight) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
