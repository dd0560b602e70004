package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePriority_FreshRecord(t *testing.T) {
	p := NewProgress("u1", "c1", testNow)
	assert.InDelta(t, 15.0, CalculatePriority(p, testNow, DefaultPriorityWeights()), 1e-9)
}

func TestCalculatePriority_Overdue(t *testing.T) {
	p := Progress{MasteryLevel: 1, SuccessRate: 1, EasinessFactor: 2.5, NextReview: testNow.AddDate(0, 0, -3)}
	assert.InDelta(t, 6.0, CalculatePriority(p, testNow, DefaultPriorityWeights()), 1e-9)

	p.NextReview = testNow.AddDate(0, 0, 3)
	assert.Zero(t, CalculatePriority(p, testNow, DefaultPriorityWeights()))
}

func TestCalculatePriority_NeverNegative(t *testing.T) {
	w := PriorityWeights{Overdue: 2, Mastery: -10, Success: 5, Ease: 2}
	p := Progress{MasteryLevel: 0, SuccessRate: 1, EasinessFactor: 2.5, NextReview: testNow}
	assert.Equal(t, 0.0, CalculatePriority(p, testNow, w))
}

func TestCalculatePriority_Monotonic(t *testing.T) {
	w := DefaultPriorityWeights()
	base := Progress{MasteryLevel: 0.5, SuccessRate: 0.5, EasinessFactor: 2.0, NextReview: testNow}

	prev := -1.0
	for d := 0; d <= 30; d++ {
		p := base
		p.NextReview = testNow.AddDate(0, 0, -d)
		got := CalculatePriority(p, testNow, w)
		assert.GreaterOrEqual(t, got, prev, "days overdue %d", d)
		prev = got
	}

	prev = 1e9
	for m := 0.0; m <= 1.0; m += 0.1 {
		p := base
		p.MasteryLevel = m
		got := CalculatePriority(p, testNow, w)
		assert.LessOrEqual(t, got, prev, "mastery %v", m)
		prev = got
	}

	prev = 1e9
	for s := 0.0; s <= 1.0; s += 0.1 {
		p := base
		p.SuccessRate = s
		got := CalculatePriority(p, testNow, w)
		assert.LessOrEqual(t, got, prev, "success rate %v", s)
		prev = got
	}
}

func TestWeaknessScore(t *testing.T) {
	w := DefaultWeaknessWeights()
	assert.Equal(t, 1000.0, WeaknessScore(nil, w))

	// 0.5*50 + 0.3*50 + 0.2*min(5*10, 100)
	p := &Progress{MasteryLevel: 0.5, SuccessRate: 0.5, TotalAttempts: 10}
	assert.InDelta(t, 50.0, WeaknessScore(p, w), 1e-9)

	worst := &Progress{TotalAttempts: 1000}
	assert.InDelta(t, 100.0, WeaknessScore(worst, w), 1e-9)
	assert.Less(t, WeaknessScore(worst, w), WeaknessScore(nil, w))
}
