package srs

import (
	"math"
	"time"
)

// Progress is a learner's memory-strength record for one concept.
// It is created lazily on first exposure and only ever mutated through
// Scheduler.UpdateConceptProgress.
type Progress struct {
	ID                 string
	UserID             string
	ConceptID          string
	MasteryLevel       float64 // [0,1]
	SuccessRate        float64 // [0,1]
	TotalAttempts      int
	ConsecutiveCorrect int
	EasinessFactor     float64 // [MinEase, MaxEase]
	IntervalDays       int     // [1, 365]
	LastPracticed      *time.Time
	NextReview         time.Time
	Active             bool
}

// NewProgress returns the default record for a concept the learner has
// never seen: no mastery, full easiness, due immediately.
func NewProgress(userID, conceptID string, now time.Time) Progress {
	return Progress{
		UserID:         userID,
		ConceptID:      conceptID,
		EasinessFactor: DefaultEase,
		IntervalDays:   MinIntervalDays,
		NextReview:     now,
		Active:         true,
	}
}

// CorrectTotal recovers the number of correct answers from the success rate.
func (p *Progress) CorrectTotal() int {
	return int(p.SuccessRate*float64(p.TotalAttempts) + 0.5)
}

// IncorrectTotal is TotalAttempts minus CorrectTotal.
func (p *Progress) IncorrectTotal() int {
	return p.TotalAttempts - p.CorrectTotal()
}

// IsDue reports whether the concept is due for review at any point today.
func (p *Progress) IsDue(now time.Time) bool {
	return !p.NextReview.After(endOfDay(now))
}

// IsOverdue reports whether the review date fell before today.
func (p *Progress) IsOverdue(now time.Time) bool {
	return p.NextReview.Before(startOfDay(now))
}

// OverdueDays returns how many days past due the concept is. Returns 0 if not yet due.
func (p *Progress) OverdueDays(now time.Time) float64 {
	if now.Before(p.NextReview) {
		return 0
	}
	return now.Sub(p.NextReview).Hours() / 24.0
}

// ReviewStatus describes where a concept sits in the review schedule.
type ReviewStatus string

const (
	ReviewScheduled ReviewStatus = "scheduled"
	ReviewDueToday  ReviewStatus = "due_today"
	ReviewOverdue   ReviewStatus = "overdue"
)

// Status classifies the record. Overdue and due-today are disjoint.
func (p *Progress) Status(now time.Time) ReviewStatus {
	switch {
	case p.IsOverdue(now):
		return ReviewOverdue
	case p.IsDue(now):
		return ReviewDueToday
	default:
		return ReviewScheduled
	}
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (p *Progress) DaysUntilReview(now time.Time) int {
	if p.IsDue(now) {
		return 0
	}
	return int(math.Ceil(p.NextReview.Sub(now).Hours() / 24.0))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
