package timeutil

import (
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	// October 12, 2026 is a Monday
	monday := time.Date(2026, time.October, 12, 9, 0, 0, 0, time.Local)

	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)

		if got := WeekdayIndex(day); got != i {
			t.Errorf("%s: expected index %d, got %d", day.Weekday(), i, got)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{
			name:     "Monday morning",
			in:       time.Date(2026, time.October, 12, 0, 30, 0, 0, time.Local),
			expected: time.Date(2026, time.October, 12, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "Sunday night",
			in:       time.Date(2026, time.October, 18, 23, 59, 0, 0, time.Local),
			expected: time.Date(2026, time.October, 12, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "Across a month boundary",
			in:       time.Date(2026, time.October, 1, 12, 0, 0, 0, time.Local),
			expected: time.Date(2026, time.September, 28, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.in)
			if !got.Equal(tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, time.March, 28, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.April, 2, 1, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 5 {
		t.Errorf("expected 5 days, got %d", got)
	}

	if got := DaysBetween(b, a); got != -5 {
		t.Errorf("expected -5 days, got %d", got)
	}

	if got := DaysBetween(a, a.Add(90*time.Minute)); got != 1 {
		t.Errorf("expected crossing midnight to count as 1 day, got %d", got)
	}
}

func TestFormatDuration(t *testing.T) {
	d := 2*time.Hour + 5*time.Minute + 9*time.Second

	if got := FormatDuration(d); got != "02:05:09" {
		t.Errorf("expected 02:05:09, got %s", got)
	}
}
