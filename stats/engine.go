package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayoisaiah/bookmark/internal/session"
)

// Source lists every recorded session.
type Source interface {
	ListSessions() ([]session.ReadingSession, error)
}

// Engine recomputes snapshots from a session source and keeps the latest one.
type Engine struct {
	src    Source
	now    func() time.Time
	logger *slog.Logger
	latest Snapshot
}

func NewEngine(src Source, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}

	return &Engine{
		src:    src,
		now:    now,
		logger: slog.Default(),
	}
}

// Recompute reads all sessions and publishes a fresh snapshot. On failure the
// previous snapshot is kept.
func (e *Engine) Recompute(ctx context.Context) (Snapshot, error) {
	sessions, err := e.src.ListSessions()
	if err != nil {
		return e.latest, err
	}

	e.latest = Compute(sessions, e.now())

	e.logger.DebugContext(
		ctx,
		"statistics recomputed",
		slog.Int("sessions", len(sessions)),
		slog.Int("current_streak", e.latest.CurrentStreak),
		slog.Int("longest_streak", e.latest.LongestStreak),
	)

	return e.latest, nil
}

// Latest returns the most recently published snapshot.
func (e *Engine) Latest() Snapshot {
	return e.latest
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}
