// Package stats computes and reports reading statistics
package stats

import (
	"slices"
	"time"

	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
)

const daysInAWeek = 7

// Snapshot is the aggregate view of all reading sessions at one instant.
// WeeklyReadingTime is indexed Monday (0) to Sunday (6) and covers the
// calendar week containing that instant.
type Snapshot struct {
	TotalReadingTime  time.Duration              `json:"total_reading_time"`
	WeeklyReadingTime [daysInAWeek]time.Duration `json:"weekly_reading_time"`
	CurrentStreak     int                        `json:"current_streak"`
	LongestStreak     int                        `json:"longest_streak"`
}

// WeekTotal is the sum of the weekly buckets.
func (s *Snapshot) WeekTotal() time.Duration {
	var total time.Duration

	for _, d := range s.WeeklyReadingTime {
		total += d
	}

	return total
}

// Today is the reading time of sessions that ended on the calendar day of now.
func (s *Snapshot) Today(now time.Time) time.Duration {
	return s.WeeklyReadingTime[timeutil.WeekdayIndex(now)]
}

// Compute derives a snapshot from sessions as seen at now. Days are calendar
// days in the location of now. Open sessions count towards the total (with
// their zero duration) but not towards weekly totals or streaks.
func Compute(sessions []session.ReadingSession, now time.Time) Snapshot {
	var snap Snapshot

	weekStart := timeutil.StartOfWeek(now)

	for i := range sessions {
		sess := &sessions[i]

		snap.TotalReadingTime += sess.Duration

		if sess.EndTime == nil {
			continue
		}

		end := sess.EndTime.In(now.Location())

		if !end.Before(weekStart) {
			snap.WeeklyReadingTime[timeutil.WeekdayIndex(end)] += sess.Duration
		}
	}

	days := readingDays(sessions, now.Location())

	snap.CurrentStreak = currentStreak(days, now)
	snap.LongestStreak = longestStreak(days)

	return snap
}

// readingDays returns the distinct calendar days on which sessions ended,
// most recent first.
func readingDays(
	sessions []session.ReadingSession,
	loc *time.Location,
) []time.Time {
	seen := make(map[int]bool)

	var days []time.Time

	for i := range sessions {
		if sessions[i].EndTime == nil {
			continue
		}

		end := sessions[i].EndTime.In(loc)

		key := timeutil.DayFormat(end)
		if seen[key] {
			continue
		}

		seen[key] = true

		days = append(days, timeutil.RoundToStart(end))
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return b.Compare(a)
	})

	return days
}

// currentStreak counts consecutive reading days ending at the most recent
// one, provided that day is today or yesterday.
func currentStreak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	if timeutil.DaysBetween(days[0], now) > 1 {
		return 0
	}

	streak := 1

	for i := 1; i < len(days); i++ {
		if timeutil.DaysBetween(days[i], days[i-1]) != 1 {
			break
		}

		streak++
	}

	return streak
}

// longestStreak is the longest run of consecutive reading days.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1

	for i := 1; i < len(days); i++ {
		if timeutil.DaysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}

		longest = max(longest, run)
	}

	return longest
}
