package srs

import "time"

const (
	// DefaultEase is the easiness factor of a fresh record.
	DefaultEase = 2.5

	// MinEase and MaxEase bound the easiness factor.
	MinEase = 1.3
	MaxEase = 2.5

	// MinIntervalDays and MaxIntervalDays bound the review interval.
	MinIntervalDays = 1
	MaxIntervalDays = 365

	// SecondIntervalDays is the interval after the second consecutive correct answer.
	SecondIntervalDays = 6
)

// Params holds the tunable constants of the scheduling rule.
type Params struct {
	MasteryGain float64 `yaml:"mastery_gain"` // added on a correct answer
	MasteryLoss float64 `yaml:"mastery_loss"` // subtracted on a wrong answer

	FastAnswer time.Duration `yaml:"fast_answer"` // correct answers quicker than this raise ease
	FastBonus  float64       `yaml:"fast_bonus"`

	SlowAnswer   time.Duration `yaml:"slow_answer"` // wrong answers slower than this lower ease further
	WrongPenalty float64       `yaml:"wrong_penalty"`
	SlowPenalty  float64       `yaml:"slow_penalty"`

	// RatingStep scales a 1-5 difficulty rating: ease += (3 - rating) * RatingStep.
	RatingStep float64 `yaml:"rating_step"`
}

// DefaultParams returns the standard scheduling constants.
func DefaultParams() Params {
	return Params{
		MasteryGain:  0.1,
		MasteryLoss:  0.2,
		FastAnswer:   5 * time.Second,
		FastBonus:    0.05,
		SlowAnswer:   15 * time.Second,
		WrongPenalty: 0.2,
		SlowPenalty:  0.1,
		RatingStep:   0.05,
	}
}
