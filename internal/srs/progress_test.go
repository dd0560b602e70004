package srs

import (
	"testing"
	"time"
)

func TestNewProgress_Defaults(t *testing.T) {
	p := NewProgress("u1", "c1", testNow)
	if p.MasteryLevel != 0 || p.SuccessRate != 0 || p.TotalAttempts != 0 {
		t.Errorf("counters not zero: %+v", p)
	}
	if p.EasinessFactor != 2.5 {
		t.Errorf("EasinessFactor = %v, want 2.5", p.EasinessFactor)
	}
	if p.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", p.IntervalDays)
	}
	if !p.NextReview.Equal(testNow) {
		t.Errorf("NextReview = %v, want %v", p.NextReview, testNow)
	}
	if p.LastPracticed != nil {
		t.Error("LastPracticed should be nil")
	}
	if !p.Active {
		t.Error("new progress should be active")
	}
}

func TestProgress_Status(t *testing.T) {
	tests := []struct {
		name       string
		nextReview time.Time
		want       ReviewStatus
	}{
		{"two days ago", testNow.AddDate(0, 0, -2), ReviewOverdue},
		{"yesterday late", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), ReviewOverdue},
		{"today early", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ReviewDueToday},
		{"today later", time.Date(2025, 1, 1, 22, 0, 0, 0, time.UTC), ReviewDueToday},
		{"tomorrow", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), ReviewScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Progress{NextReview: tt.nextReview}
			if got := p.Status(testNow); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_OverdueImpliesDue(t *testing.T) {
	for d := -5; d <= 5; d++ {
		p := Progress{NextReview: testNow.AddDate(0, 0, d)}
		if p.IsOverdue(testNow) && !p.IsDue(testNow) {
			t.Errorf("offset %d: overdue but not due", d)
		}
	}
}

func TestProgress_DaysUntilReview(t *testing.T) {
	p := Progress{NextReview: testNow.AddDate(0, 0, 3)}
	if got := p.DaysUntilReview(testNow); got != 3 {
		t.Errorf("DaysUntilReview() = %d, want 3", got)
	}
	p.NextReview = testNow.Add(-time.Hour)
	if got := p.DaysUntilReview(testNow); got != 0 {
		t.Errorf("DaysUntilReview() = %d, want 0", got)
	}
}

func TestProgress_CorrectTotal(t *testing.T) {
	p := Progress{TotalAttempts: 3, SuccessRate: 2.0 / 3.0}
	if got := p.CorrectTotal(); got != 2 {
		t.Errorf("CorrectTotal() = %d, want 2", got)
	}
	if got := p.IncorrectTotal(); got != 1 {
		t.Errorf("IncorrectTotal() = %d, want 1", got)
	}
}
