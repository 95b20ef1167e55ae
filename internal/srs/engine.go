// internal/srs/engine.go
package srs

import (
	"math"
	"time"
)

// Apply は SM-2 系のルールで評価を適用し、新しい状態を返します。
// 入力の state は変更しません。I/O は一切行いません。
func Apply(state State, rating Rating, now time.Time) State {
	next := state

	ef := state.EaseFactor
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	prevInterval := state.IntervalDays
	if prevInterval < 1 {
		prevInterval = 1
	}

	if rating.IsSuccess() {
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			// 間隔の計算には今回の調整前の EF を使う
			next.IntervalDays = int(math.Round(float64(prevInterval) * ef))
		}
		next.EaseFactor = adjustEaseFactor(ef, rating)
		next.LearningStatus = statusForRepetitions(next.Repetitions)
		next.TimesCorrect = state.TimesCorrect + 1
	} else {
		// 不正解では EF は変えない
		next.Repetitions = 0
		next.IntervalDays = 1
		next.EaseFactor = ef
		next.LearningStatus = StatusLearning
		next.TimesIncorrect = state.TimesIncorrect + 1
	}

	next.TimesPracticed = state.TimesPracticed + 1
	practicedAt := now
	next.LastPracticedAt = &practicedAt
	next.NextReviewDate = now.AddDate(0, 0, next.IntervalDays)

	return next
}

func adjustEaseFactor(ef float64, rating Rating) float64 {
	q := float64(5 - rating)
	newEF := ef + (0.1 - q*(0.08+q*0.02))
	if newEF < MinEaseFactor {
		return MinEaseFactor
	}
	return newEF
}

func statusForRepetitions(reps int) Status {
	switch {
	case reps >= 6:
		return StatusMature
	case reps >= 3:
		return StatusReview
	default:
		return StatusLearning
	}
}
