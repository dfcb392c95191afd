package session

import (
	"context"
	"log/slog"
	"time"
)

// Store persists reading sessions. AppendSession is called for both the open
// and the finalized form of a session, and implementations must store them
// under the same identity.
type Store interface {
	AppendSession(sess *ReadingSession) error
	ListSessions() ([]ReadingSession, error)
}

// EndHook runs after a session has been finalized.
type EndHook func(ctx context.Context, sess *ReadingSession)

// Tracker owns the session in progress. It is not safe for concurrent use.
type Tracker struct {
	store   Store
	now     func() time.Time
	logger  *slog.Logger
	current *ReadingSession
	hooks   []EndHook
}

type Option func(*Tracker)

// WithClock sets the time source used to stamp sessions.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// OnEnd registers hooks that run, in order, every time a session ends.
func OnEnd(hooks ...EndHook) Option {
	return func(t *Tracker) {
		t.hooks = append(t.hooks, hooks...)
	}
}

func NewTracker(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Current returns the session in progress or nil.
func (t *Tracker) Current() *ReadingSession {
	return t.current
}

// Start opens a session for bookID and persists it. A session already in
// progress is replaced without being finalized. The new session is current
// even when persisting it fails.
func (t *Tracker) Start(
	ctx context.Context,
	bookID string,
) (*ReadingSession, error) {
	if t.current != nil {
		t.logger.WarnContext(
			ctx,
			"abandoning open session",
			slog.String("id", t.current.ID.String()),
			slog.String("book", t.current.BookID),
		)
	}

	sess := New(bookID, t.now())
	t.current = sess

	t.logger.InfoContext(
		ctx,
		"session started",
		slog.String("id", sess.ID.String()),
		slog.String("book", bookID),
	)

	return sess, t.store.AppendSession(sess)
}

// TurnPage counts n pages towards the session in progress.
func (t *Tracker) TurnPage(n int) {
	if t.current == nil {
		return
	}

	t.current.PagesRead += n
}

// End finalizes the session in progress, persists it and runs the end hooks.
// It does nothing when no session is in progress. The tracker is idle
// afterwards whether or not persisting succeeded.
func (t *Tracker) End(ctx context.Context) (*ReadingSession, error) {
	sess := t.current
	if sess == nil {
		return nil, nil
	}

	sess.Finalize(t.now())
	t.current = nil

	err := t.store.AppendSession(sess)
	if err != nil {
		t.logger.ErrorContext(
			ctx,
			"unable to save session",
			slog.String("id", sess.ID.String()),
			slog.Any("error", err),
		)
	} else {
		t.logger.InfoContext(
			ctx,
			"session ended",
			slog.String("id", sess.ID.String()),
			slog.Duration("duration", sess.Duration),
		)
	}

	for _, hook := range t.hooks {
		hook(ctx, sess)
	}

	return sess, err
}
