package srs

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func freshProgress() Progress {
	return NewProgress("u1", "c1", testNow)
}

func TestCalculateNextReview_CorrectIntervals(t *testing.T) {
	p := freshProgress()
	slow := Outcome{Correct: true, ResponseTimeMs: 8000}

	r := CalculateNextReview(p, slow, testNow)
	if r.IntervalDays != 1 || r.ConsecutiveCorrect != 1 {
		t.Fatalf("first correct = (%d, %d), want (1, 1)", r.IntervalDays, r.ConsecutiveCorrect)
	}

	p.ConsecutiveCorrect, p.IntervalDays = r.ConsecutiveCorrect, r.IntervalDays
	r = CalculateNextReview(p, slow, testNow)
	if r.IntervalDays != 6 || r.ConsecutiveCorrect != 2 {
		t.Fatalf("second correct = (%d, %d), want (6, 2)", r.IntervalDays, r.ConsecutiveCorrect)
	}

	p.ConsecutiveCorrect, p.IntervalDays = r.ConsecutiveCorrect, r.IntervalDays
	r = CalculateNextReview(p, slow, testNow)
	if r.IntervalDays != 15 { // round(6 * 2.5)
		t.Errorf("third correct interval = %d, want 15", r.IntervalDays)
	}
	if want := testNow.AddDate(0, 0, 15); !r.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", r.NextReview, want)
	}
	if r.MasteryLevelChange != 0.1 {
		t.Errorf("MasteryLevelChange = %v, want 0.1", r.MasteryLevelChange)
	}
}

func TestCalculateNextReview_UsesEaseBeforeAdjustment(t *testing.T) {
	p := freshProgress()
	p.ConsecutiveCorrect = 2
	p.IntervalDays = 10
	p.EasinessFactor = 1.5

	r := CalculateNextReview(p, Outcome{Correct: true, ResponseTimeMs: 1000}, testNow)
	if r.IntervalDays != 15 {
		t.Errorf("IntervalDays = %d, want 15", r.IntervalDays)
	}
	if !approx(r.EasinessFactor, 1.55) {
		t.Errorf("EasinessFactor = %v, want 1.55", r.EasinessFactor)
	}
}

func TestCalculateNextReview_Incorrect(t *testing.T) {
	tests := []struct {
		name     string
		ms       int
		wantEase float64
	}{
		{"quick wrong", 3000, 2.3},
		{"slow wrong", 20000, 2.2},
		{"boundary not slow", 15000, 2.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := freshProgress()
			p.ConsecutiveCorrect = 7
			p.IntervalDays = 90

			r := CalculateNextReview(p, Outcome{ResponseTimeMs: tt.ms}, testNow)
			if r.IntervalDays != 1 {
				t.Errorf("IntervalDays = %d, want 1", r.IntervalDays)
			}
			if r.ConsecutiveCorrect != 0 {
				t.Errorf("ConsecutiveCorrect = %d, want 0", r.ConsecutiveCorrect)
			}
			if r.MasteryLevelChange != -0.2 {
				t.Errorf("MasteryLevelChange = %v, want -0.2", r.MasteryLevelChange)
			}
			if !approx(r.EasinessFactor, tt.wantEase) {
				t.Errorf("EasinessFactor = %v, want %v", r.EasinessFactor, tt.wantEase)
			}
		})
	}
}

func TestCalculateNextReview_DifficultyRating(t *testing.T) {
	tests := []struct {
		rating   int
		wantEase float64
	}{
		{0, 1.8},  // not supplied
		{1, 1.9},  // very easy
		{2, 1.85}, // easy
		{3, 1.8},  // neutral
		{4, 1.75}, // hard
		{5, 1.7},  // very hard
		{9, 1.8},  // out of range
		{-2, 1.8}, // out of range
	}
	for _, tt := range tests {
		p := freshProgress()
		p.EasinessFactor = 1.8
		r := CalculateNextReview(p, Outcome{Correct: true, ResponseTimeMs: 9000, DifficultyRating: tt.rating}, testNow)
		if !approx(r.EasinessFactor, tt.wantEase) {
			t.Errorf("rating %d: EasinessFactor = %v, want %v", tt.rating, r.EasinessFactor, tt.wantEase)
		}
	}
}

func TestCalculateNextReview_EaseAlwaysClamped(t *testing.T) {
	p := freshProgress()
	for i := 0; i < 50; i++ {
		r := CalculateNextReview(p, Outcome{ResponseTimeMs: 30000, DifficultyRating: 5}, testNow)
		if r.EasinessFactor < MinEase || r.EasinessFactor > MaxEase {
			t.Fatalf("all-wrong run %d: ease %v out of bounds", i, r.EasinessFactor)
		}
		p.EasinessFactor, p.IntervalDays, p.ConsecutiveCorrect = r.EasinessFactor, r.IntervalDays, r.ConsecutiveCorrect
	}
	if p.EasinessFactor != MinEase {
		t.Errorf("after all-wrong run ease = %v, want %v", p.EasinessFactor, MinEase)
	}

	for i := 0; i < 50; i++ {
		r := CalculateNextReview(p, Outcome{Correct: true, ResponseTimeMs: 500, DifficultyRating: 1}, testNow)
		if r.EasinessFactor < MinEase || r.EasinessFactor > MaxEase {
			t.Fatalf("all-right run %d: ease %v out of bounds", i, r.EasinessFactor)
		}
		if r.IntervalDays < MinIntervalDays || r.IntervalDays > MaxIntervalDays {
			t.Fatalf("all-right run %d: interval %d out of bounds", i, r.IntervalDays)
		}
		if r.ConsecutiveCorrect != p.ConsecutiveCorrect+1 {
			t.Fatalf("ConsecutiveCorrect = %d, want %d", r.ConsecutiveCorrect, p.ConsecutiveCorrect+1)
		}
		p.EasinessFactor, p.IntervalDays, p.ConsecutiveCorrect = r.EasinessFactor, r.IntervalDays, r.ConsecutiveCorrect
	}
	if p.EasinessFactor != MaxEase {
		t.Errorf("after all-right run ease = %v, want %v", p.EasinessFactor, MaxEase)
	}
	if p.IntervalDays != MaxIntervalDays {
		t.Errorf("after all-right run interval = %d, want %d", p.IntervalDays, MaxIntervalDays)
	}
}

func TestCalculateNextReview_Pure(t *testing.T) {
	p := freshProgress()
	p.ConsecutiveCorrect = 3
	p.IntervalDays = 20
	o := Outcome{Correct: true, ResponseTimeMs: 4000, DifficultyRating: 2}

	a := CalculateNextReview(p, o, testNow)
	b := CalculateNextReview(p, o, testNow)
	if a != b {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
	if p.ConsecutiveCorrect != 3 || p.IntervalDays != 20 {
		t.Error("input progress was modified")
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
