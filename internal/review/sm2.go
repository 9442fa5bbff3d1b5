package review

import (
	"math"
	"time"
)

// MinEaseFactor is the floor below which an item's ease factor never drops.
// Without it, persistently missed words would shrink their intervals forever.
const MinEaseFactor = 1.3

// InitialEaseFactor is the ease assigned to a word on its first answer.
const InitialEaseFactor = 2.5

// ScheduleUpdate is the result of one SuperMemo-2 step.
type ScheduleUpdate struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReview   time.Time
}

// QualityFromPerformance maps an answer outcome to an SM-2 quality score.
// timeSpent is seconds taken to answer; pass nil when timing is unknown.
//
//	incorrect            -> 2 (familiar but wrong)
//	correct, no timing   -> 4
//	correct, < 3s        -> 5
//	correct, 3s to <10s  -> 4
//	correct, >= 10s      -> 3
func QualityFromPerformance(isCorrect bool, timeSpent *float64) int {
	if !isCorrect {
		return 2
	}
	if timeSpent == nil {
		return 4
	}
	switch {
	case *timeSpent < 3:
		return 5
	case *timeSpent < 10:
		return 4
	default:
		return 3
	}
}

// CalculateNextReview applies one SM-2 update.
//
// quality is the full 0-5 SM-2 domain even though QualityFromPerformance only
// produces 2-5. A quality below 3 resets the repetition chain; otherwise the
// interval follows the 1 day / 6 days / interval*ease progression.
func CalculateNextReview(quality int, easeFactor float64, intervalDays, repetitions int, now time.Time) ScheduleUpdate {
	// EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02))
	q := float64(quality)
	ease := easeFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var reps, interval int
	if quality < 3 {
		reps = 0
		interval = 1
	} else {
		reps = repetitions + 1
		switch reps {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.Floor(float64(intervalDays) * ease))
		}
	}

	return ScheduleUpdate{
		EaseFactor:   ease,
		IntervalDays: interval,
		Repetitions:  reps,
		NextReview:   now.AddDate(0, 0, interval),
	}
}
