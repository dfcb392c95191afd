package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/bookmark/internal/badge"
	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/report"
	"github.com/ayoisaiah/bookmark/stats"
	"github.com/ayoisaiah/bookmark/store"
)

// finishedBooks counts the books marked as finished.
func finishedBooks(db store.DB) (int, error) {
	books, err := db.ListBooks()
	if err != nil {
		return 0, err
	}

	var n int

	for i := range books {
		if books[i].IsFinished {
			n++
		}
	}

	return n, nil
}

// awardBadges recomputes the statistics and saves the badges they newly
// qualify for. Only the new badges are returned.
func awardBadges(ctx context.Context, db store.DB) ([]badge.Badge, error) {
	snap, err := stats.NewEngine(db, nil).Recompute(ctx)
	if err != nil {
		return nil, err
	}

	finished, err := finishedBooks(db)
	if err != nil {
		return nil, err
	}

	earned, err := db.LoadEarnedBadges()
	if err != nil {
		return nil, err
	}

	awarded := badge.NewEvaluator(nil).Evaluate(
		snap.CurrentStreak,
		int(snap.TotalReadingTime.Minutes()),
		finished,
		badge.EarnedKinds(earned),
	)
	if len(awarded) == 0 {
		return nil, nil
	}

	err = db.SaveEarnedBadges(badge.Merge(earned, awarded))
	if err != nil {
		return nil, err
	}

	return awarded, nil
}

// runSessionCmd executes the configured command after a session.
func runSessionCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)

	return cmd.Run()
}

// notify sends a desktop notification for new badges. The book cover is used
// as the icon when there is one.
func notify(bs []badge.Badge, pkg *epub.Package) error {
	if len(bs) == 0 {
		return nil
	}

	titles := make([]string, len(bs))
	for i := range bs {
		titles[i] = bs[i].Kind.Title()
	}

	var pathToIcon string
	if pkg != nil && pkg.CoverImagePath != nil {
		pathToIcon = pkg.Abs(*pkg.CoverImagePath)
	}

	return beeep.Notify(
		"New badge earned",
		strings.Join(titles, ", "),
		pathToIcon,
	)
}

// afterSession returns the hook run when a reading session ends. Failures
// are logged and reported without stopping the remaining steps.
func (e *env) afterSession(pkg *epub.Package) session.EndHook {
	return func(ctx context.Context, sess *session.ReadingSession) {
		awarded, err := awardBadges(ctx, e.db)
		if err != nil {
			e.logger.ErrorContext(
				ctx,
				"unable to evaluate badges",
				slog.Any("error", err),
			)
			report.Warn(err)
		}

		report.BadgesEarned(awarded)

		if e.cfg.Notifications.Enabled {
			err = notify(awarded, pkg)
			if err != nil {
				e.logger.WarnContext(
					ctx,
					"unable to display notification",
					slog.Any("error", err),
				)
			}
		}

		err = runSessionCmd(ctx, e.cfg.Settings.Cmd)
		if err != nil {
			e.logger.ErrorContext(
				ctx,
				"session command failed",
				slog.String("cmd", e.cfg.Settings.Cmd),
				slog.String("session", sess.ID.String()),
				slog.Any("error", err),
			)
			report.Warn(err)
		}
	}
}
