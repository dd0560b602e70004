package srs

import (
	"math"
	"time"
)

// Outcome is the result of a single answer.
type Outcome struct {
	Correct        bool
	ResponseTimeMs int

	// DifficultyRating is the learner's optional 1-5 rating of how hard the
	// question felt (1 = very easy, 5 = very hard). Zero means not supplied;
	// values outside 1-5 are ignored. Note this runs opposite to the
	// "1 = hard, 5 = easy" wording some review tools use: on a correct
	// answer ease moves by (3 - rating) * RatingStep, so 1 raises it.
	DifficultyRating int
}

// Result is the new schedule computed from an answer.
type Result struct {
	NextReview         time.Time
	EasinessFactor     float64
	IntervalDays       int
	ConsecutiveCorrect int
	MasteryLevelChange float64
}

// CalculateNextReview applies the default parameters. See Params.NextReview.
func CalculateNextReview(p Progress, o Outcome, now time.Time) Result {
	return DefaultParams().NextReview(p, o, now)
}

// NextReview computes the schedule that follows an answer. It is a pure
// function of its inputs.
//
// Correct answers extend the interval along 1, 6, then round(prev * ease);
// wrong answers reset it to one day. Ease is clamped to [MinEase, MaxEase]
// and the interval to [MinIntervalDays, MaxIntervalDays].
func (pp Params) NextReview(p Progress, o Outcome, now time.Time) Result {
	ease := p.EasinessFactor
	if ease == 0 {
		ease = DefaultEase
	}
	responseTime := time.Duration(o.ResponseTimeMs) * time.Millisecond

	var r Result
	if o.Correct {
		r.ConsecutiveCorrect = p.ConsecutiveCorrect + 1
		switch r.ConsecutiveCorrect {
		case 1:
			r.IntervalDays = 1
		case 2:
			r.IntervalDays = SecondIntervalDays
		default:
			prev := max(p.IntervalDays, MinIntervalDays)
			r.IntervalDays = int(math.Round(float64(prev) * ease))
		}
		r.MasteryLevelChange = pp.MasteryGain

		if responseTime < pp.FastAnswer {
			ease += pp.FastBonus
		}
		if o.DifficultyRating >= 1 && o.DifficultyRating <= 5 {
			ease += float64(3-o.DifficultyRating) * pp.RatingStep
		}
	} else {
		r.ConsecutiveCorrect = 0
		r.IntervalDays = MinIntervalDays
		r.MasteryLevelChange = -pp.MasteryLoss

		ease -= pp.WrongPenalty
		if responseTime > pp.SlowAnswer {
			ease -= pp.SlowPenalty
		}
	}

	r.EasinessFactor = clampFloat(ease, MinEase, MaxEase)
	r.IntervalDays = min(max(r.IntervalDays, MinIntervalDays), MaxIntervalDays)
	r.NextReview = now.AddDate(0, 0, r.IntervalDays)
	return r
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
