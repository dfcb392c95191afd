// Package reader is the terminal reading view. It shows one chapter at a
// time as plain text and times the reading session while it is open.
package reader

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/session"
)

// ProgressStore keeps the reader position of each book.
type ProgressStore interface {
	// GetProgress returns nil if no position was saved for the book
	GetProgress(bookID string) (*models.Progress, error)
	SaveProgress(p *models.Progress) error
}

// Model is the bubbletea model of the reader.
type Model struct {
	now      func() time.Time
	err      error
	pkg      *epub.Package
	tracker  *session.Tracker
	progress ProgressStore
	logger   *slog.Logger
	text     string
	layout   string
	help     help.Model
	viewport viewport.Model
	chapter  int
	width    int
	ready    bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the time source of the session clock.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithClockLayout sets the time format of the session start time.
func WithClockLayout(layout string) Option {
	return func(m *Model) {
		m.layout = layout
	}
}

// WithLogger sets the logger used for progress errors.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New returns a reader for pkg positioned at the saved chapter, if there is
// one and it is still in range.
func New(
	pkg *epub.Package,
	tracker *session.Tracker,
	progress ProgressStore,
	opts ...Option,
) *Model {
	m := &Model{
		pkg:      pkg,
		tracker:  tracker,
		progress: progress,
		now:      time.Now,
		logger:   slog.Default(),
		layout:   time.Kitchen,
		help:     help.New(),
	}

	for _, opt := range opts {
		opt(m)
	}

	p, err := progress.GetProgress(pkg.Title)
	if err != nil {
		m.logger.Warn(
			"unable to load reading progress",
			slog.String("book", pkg.Title),
			slog.Any("error", err),
		)
	}

	if p != nil && p.CurrentChapter >= 0 && p.CurrentChapter < len(pkg.Chapters) {
		m.chapter = p.CurrentChapter
	}

	return m
}

// Chapter returns the index of the chapter on screen.
func (m *Model) Chapter() int {
	return m.chapter
}

// Run starts a reading session, runs the reader until the user quits and
// ends the session. The ended session is returned even when saving it
// failed.
func (m *Model) Run(ctx context.Context) (*session.ReadingSession, error) {
	_, startErr := m.tracker.Start(ctx, m.pkg.Title)
	if startErr != nil {
		m.err = startErr
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	_, runErr := p.Run()

	sess, endErr := m.tracker.End(ctx)

	return sess, errors.Join(startErr, runErr, endErr)
}

// chapterMsg carries the text of a loaded chapter.
type chapterMsg struct {
	err   error
	text  string
	index int
}

// tickMsg refreshes the session clock.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) loadChapter(index int) tea.Cmd {
	ch, ok := m.pkg.Chapter(index)
	if !ok {
		return nil
	}

	path := m.pkg.Abs(ch.ContentPath)

	return func() tea.Msg {
		text, err := LoadChapter(path)
		return chapterMsg{index: index, text: text, err: err}
	}
}

// saveProgress records the current chapter. Failures are shown in the
// status line and do not interrupt reading.
func (m *Model) saveProgress() {
	p := &models.Progress{
		BookID:         m.pkg.Title,
		CurrentChapter: m.chapter,
		TotalChapters:  len(m.pkg.Chapters),
		UpdatedAt:      m.now(),
	}

	err := m.progress.SaveProgress(p)
	if err != nil {
		m.err = err
		m.logger.Error(
			"unable to save reading progress",
			slog.String("book", p.BookID),
			slog.Any("error", err),
		)
	}
}

// elapsed is the running time of the session in progress.
func (m *Model) elapsed() time.Duration {
	sess := m.tracker.Current()
	if sess == nil {
		return 0
	}

	return m.now().Sub(sess.StartTime)
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadChapter(m.chapter), tick())
}
