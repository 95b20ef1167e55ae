// internal/srs/stats.go
package srs

import (
	"math"
	"time"
)

// Stats はカード全体から導出される集計値です。保存はせず、毎回計算します。
type Stats struct {
	TotalCards    int `json:"total_cards"`
	DueToday      int `json:"due_today"`
	New           int `json:"new"`
	Learning      int `json:"learning"`
	Review        int `json:"review"`
	Mature        int `json:"mature"`
	TotalReviews  int `json:"total_reviews"`
	AccuracyRate  int `json:"accuracy_rate"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// ComputeStats はカードの状態一覧から統計を計算します。
//
// ストリークは簡易版: 直近24時間以内に練習したカードがあれば current=1。
// longest は練習履歴が1件でもあれば 1 の固定値 (練習日の履歴を持たないため)。
func ComputeStats(states []State, now time.Time) Stats {
	var st Stats
	var totalCorrect int
	practicedRecently := false

	for _, s := range states {
		st.TotalCards++
		switch s.LearningStatus {
		case StatusNew:
			st.New++
		case StatusLearning:
			st.Learning++
		case StatusReview:
			st.Review++
		case StatusMature:
			st.Mature++
		}
		if s.IsDue(now) {
			st.DueToday++
		}
		st.TotalReviews += s.TimesPracticed
		totalCorrect += s.TimesCorrect

		if s.LastPracticedAt != nil && now.Sub(*s.LastPracticedAt) <= 24*time.Hour {
			practicedRecently = true
		}
	}

	if st.TotalReviews > 0 {
		st.AccuracyRate = int(math.Round(100 * float64(totalCorrect) / float64(st.TotalReviews)))
		st.LongestStreak = 1
	}
	if practicedRecently {
		st.CurrentStreak = 1
	}
	return st
}
