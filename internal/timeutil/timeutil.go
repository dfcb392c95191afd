// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const daysInAWeek = 7

const HoursInADay = 24

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// WeekdayIndex maps a time to its day of the week with Monday as 0 and
// Sunday as 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + daysInAWeek - 1) % daysInAWeek
}

// StartOfWeek returns local midnight of the most recent Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return RoundToStart(t).AddDate(0, 0, -WeekdayIndex(t))
}

// DaysBetween returns the number of calendar days from a to b. Both times are
// compared by their calendar date in their own location, so the result is not
// affected by daylight saving transitions.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	return int(db.Sub(da).Hours() / HoursInADay)
}

// DayFormat returns the calendar date of t as an integer (YYYYMMDD).
func DayFormat(t time.Time) int {
	d := fmt.Sprintf("%d%02d%02d", t.Year(), t.Month(), t.Day())

	i, _ := strconv.Atoi(d)

	return i
}

// FormatDuration formats d as hh:mm:ss.
func FormatDuration(d time.Duration) string {
	secs := int64(d.Seconds())

	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FromStr parses a natural language date such as "30 mins ago" relative to
// the current time.
func FromStr(s string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as a date: %w", s, err)
	}

	return dt.Time, nil
}

// keyLayout is fixed width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
