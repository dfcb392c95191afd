// Package badge defines reading achievements and decides when they are earned
package badge

import (
	"time"
)

// Kind identifies a badge. Its value is the stable name used in storage.
type Kind string

const (
	Streak3   Kind = "streak_3"
	Streak7   Kind = "streak_7"
	Streak30  Kind = "streak_30"
	Streak100 Kind = "streak_100"
	Time10    Kind = "time_10"
	Time50    Kind = "time_50"
	Time100   Kind = "time_100"
	Books1    Kind = "books_1"
	Books5    Kind = "books_5"
	Books10   Kind = "books_10"
)

// Family groups kinds that are measured against the same quantity.
type Family string

const (
	StreakFamily Family = "streak"
	TimeFamily   Family = "time"
	BooksFamily  Family = "books"
)

type definition struct {
	family      Family
	title       string
	description string
	threshold   int
}

// Kinds lists every badge in display order.
var Kinds = []Kind{
	Streak3, Streak7, Streak30, Streak100,
	Time10, Time50, Time100,
	Books1, Books5, Books10,
}

var definitions = map[Kind]definition{
	Streak3:   {StreakFamily, "Burning Start", "Read 3 days in a row", 3},
	Streak7:   {StreakFamily, "Power of a Week", "Read 7 days in a row", 7},
	Streak30:  {StreakFamily, "Month of Devotion", "Read 30 days in a row", 30},
	Streak100: {StreakFamily, "Hundred-Day Miracle", "Read 100 days in a row", 100},
	Time10:    {TimeFamily, "Novice Reader", "Read for 10 hours in total", 600},
	Time50:    {TimeFamily, "Passionate Reader", "Read for 50 hours in total", 3000},
	Time100:   {TimeFamily, "Reading Master", "Read for 100 hours in total", 6000},
	Books1:    {BooksFamily, "First Book", "Finish your first book", 1},
	Books5:    {BooksFamily, "Bookworm", "Finish 5 books", 5},
	Books10:   {BooksFamily, "Bibliophile", "Finish 10 books", 10},
}

func (k Kind) Title() string {
	return definitions[k].title
}

func (k Kind) Description() string {
	return definitions[k].description
}

func (k Kind) Family() Family {
	return definitions[k].family
}

// Threshold is the value to reach: consecutive days for streak badges,
// minutes for time badges and finished books for book badges.
func (k Kind) Threshold() int {
	return definitions[k].threshold
}

func (k Kind) Valid() bool {
	_, ok := definitions[k]
	return ok
}

// Badge is a kind together with the time it was earned, if it was.
type Badge struct {
	EarnedDate *time.Time `json:"earned_date,omitempty"`
	Kind       Kind       `json:"kind"`
}

func (b *Badge) IsEarned() bool {
	return b.EarnedDate != nil
}

// All returns the full catalogue in display order with earned dates taken
// from earned.
func All(earned []Badge) []Badge {
	dates := make(map[Kind]*time.Time, len(earned))

	for i := range earned {
		if earned[i].IsEarned() {
			dates[earned[i].Kind] = earned[i].EarnedDate
		}
	}

	all := make([]Badge, 0, len(Kinds))

	for _, k := range Kinds {
		all = append(all, Badge{Kind: k, EarnedDate: dates[k]})
	}

	return all
}

// Merge appends newly awarded badges to earned. Kinds already present keep
// their original date.
func Merge(earned, awarded []Badge) []Badge {
	seen := make(map[Kind]bool, len(earned))

	for i := range earned {
		seen[earned[i].Kind] = true
	}

	merged := append([]Badge(nil), earned...)

	for i := range awarded {
		if seen[awarded[i].Kind] {
			continue
		}

		seen[awarded[i].Kind] = true
		merged = append(merged, awarded[i])
	}

	return merged
}
