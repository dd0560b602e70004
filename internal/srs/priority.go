package srs

import (
	"math"
	"time"
)

// PriorityWeights are the coefficients of the review urgency score.
type PriorityWeights struct {
	Overdue float64 `yaml:"overdue"` // per day past due
	Mastery float64 `yaml:"mastery"` // times (1 - mastery)
	Success float64 `yaml:"success"` // times (1 - success rate)
	Ease    float64 `yaml:"ease"`    // times (MaxEase - ease)
}

// DefaultPriorityWeights returns the standard urgency weights.
func DefaultPriorityWeights() PriorityWeights {
	return PriorityWeights{Overdue: 2, Mastery: 10, Success: 5, Ease: 2}
}

// CalculatePriority scores how urgently a concept needs review. Higher is
// more urgent; the score is never negative.
func CalculatePriority(p Progress, now time.Time, w PriorityWeights) float64 {
	score := 0.0
	if d := p.OverdueDays(now); d > 0 {
		score += w.Overdue * d
	}
	score += w.Mastery * (1 - p.MasteryLevel)
	score += w.Success * (1 - p.SuccessRate)
	score += w.Ease * (MaxEase - p.EasinessFactor)
	return math.Max(score, 0)
}

// WeaknessWeights are the coefficients of the drill weakness score.
type WeaknessWeights struct {
	Mastery    float64 `yaml:"mastery"`
	Success    float64 `yaml:"success"`
	Incorrect  float64 `yaml:"incorrect"`
	NoProgress float64 `yaml:"no_progress"` // score for concepts with no record
}

// DefaultWeaknessWeights returns the standard weakness weights.
func DefaultWeaknessWeights() WeaknessWeights {
	return WeaknessWeights{Mastery: 0.5, Success: 0.3, Incorrect: 0.2, NoProgress: 1000}
}

// WeaknessScore ranks how weak the learner is on a concept. A nil record
// scores w.NoProgress, which exceeds any score a record with history can
// reach (at most 100 with the default weights).
func WeaknessScore(p *Progress, w WeaknessWeights) float64 {
	if p == nil {
		return w.NoProgress
	}
	incorrect := math.Min(float64(p.IncorrectTotal())*10, 100)
	return w.Mastery*(1-p.MasteryLevel)*100 +
		w.Success*(1-p.SuccessRate)*100 +
		w.Incorrect*incorrect
}
