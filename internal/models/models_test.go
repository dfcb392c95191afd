package models

import "testing"

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name     string
		goal     Goal
		minutes  float64
		progress int
		achieved bool
	}{
		{"half way", Goal{Type: Daily, TargetMinutes: 30}, 15, 50, false},
		{"exactly met", Goal{Type: Daily, TargetMinutes: 30}, 30, 100, true},
		{"capped", Goal{Type: Weekly, TargetMinutes: 60}, 600, 100, true},
		{"zero target", Goal{Type: Weekly}, 10, 0, true},
		{"negative target", Goal{Type: Daily, TargetMinutes: -5}, 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.goal.Progress(tc.minutes); got != tc.progress {
				t.Errorf("expected progress %d, got %d", tc.progress, got)
			}

			if got := tc.goal.IsAchieved(tc.minutes); got != tc.achieved {
				t.Errorf("expected achieved %t, got %t", tc.achieved, got)
			}
		})
	}
}

func TestProgressRatio(t *testing.T) {
	cases := []struct {
		progress   Progress
		percentage int
	}{
		{Progress{CurrentChapter: 0, TotalChapters: 4}, 25},
		{Progress{CurrentChapter: 3, TotalChapters: 4}, 100},
		{Progress{CurrentChapter: 2, TotalChapters: 0}, 0},
	}

	for _, tc := range cases {
		if got := tc.progress.Percentage(); got != tc.percentage {
			t.Errorf("%+v: expected %d%%, got %d%%", tc.progress, tc.percentage, got)
		}
	}
}

func TestBookFinish(t *testing.T) {
	b := &Book{Title: "Dune"}

	if err := b.Finish(6); err == nil {
		t.Error("expected an error for a rating above 5")
	}

	if b.IsFinished {
		t.Error("book must not be finished after an invalid rating")
	}

	if err := b.Finish(4); err != nil {
		t.Fatal(err)
	}

	if !b.IsFinished || b.Rating != 4 {
		t.Errorf("unexpected book state: %+v", b)
	}
}
