// Package models defines the records BookMark keeps about books besides their
// reading sessions.
package models

import (
	"errors"
	"time"
)

const (
	MaxRating = 5
	percent   = 100
)

var errInvalidRating = errors.New("rating must be between 0 and 5")

// Book is what BookMark remembers about a book it has opened. BookID is the
// book title.
type Book struct {
	LastReadAt time.Time `json:"last_read_at"`
	Genre      *string   `json:"genre,omitempty"`
	BookID     string    `json:"book_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Path       string    `json:"path"`
	Rating     int       `json:"rating"`
	IsFinished bool      `json:"is_finished"`
}

// Finish marks the book as read with an optional rating (0 for none).
func (b *Book) Finish(rating int) error {
	if rating < 0 || rating > MaxRating {
		return errInvalidRating
	}

	b.IsFinished = true
	b.Rating = rating

	return nil
}

// Progress is the reader position within a book.
type Progress struct {
	UpdatedAt      time.Time `json:"updated_at"`
	BookID         string    `json:"book_id"`
	CurrentChapter int       `json:"current_chapter"`
	TotalChapters  int       `json:"total_chapters"`
}

// Ratio is the share of chapters reached, counting the current one.
func (p *Progress) Ratio() float64 {
	if p.TotalChapters <= 0 {
		return 0
	}

	return float64(p.CurrentChapter+1) / float64(p.TotalChapters)
}

func (p *Progress) Percentage() int {
	return int(p.Ratio() * percent)
}

// GoalType is the period a reading goal applies to.
type GoalType string

const (
	Daily  GoalType = "daily"
	Weekly GoalType = "weekly"
)

// Goal is a target number of reading minutes per day or per week.
type Goal struct {
	StartDate     time.Time `json:"start_date"`
	Type          GoalType  `json:"type"`
	TargetMinutes int       `json:"target_minutes"`
}

func (g *Goal) IsAchieved(minutes float64) bool {
	return minutes >= float64(g.TargetMinutes)
}

// Progress returns how far minutes go towards the target as a percentage
// capped at 100.
func (g *Goal) Progress(minutes float64) int {
	if g.TargetMinutes <= 0 {
		return 0
	}

	return min(int(minutes/float64(g.TargetMinutes)*percent), percent)
}
