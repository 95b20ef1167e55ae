// internal/srs/state.go
package srs

import "time"

// Status はカードの学習段階です。new → learning → review → mature と進み、
// 不正解で learning に戻ります。
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusReview   Status = "review"
	StatusMature   Status = "mature"
)

// AllStatuses は集計や入力チェックで使う全ステータスの一覧
var AllStatuses = []Status{StatusNew, StatusLearning, StatusReview, StatusMature}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusReview, StatusMature:
		return true
	}
	return false
}

// IsReviewable は due 判定の対象となるステータスかどうかを返します。
func (s Status) IsReviewable() bool {
	return s == StatusLearning || s == StatusReview
}

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// State はカードのスケジューリング状態です。
// model.VocabularyCard に埋め込まれ、そのままDBのカラムになります。
type State struct {
	LearningStatus  Status     `gorm:"type:varchar(16);not null;index" json:"learning_status"`
	EaseFactor      float64    `gorm:"not null" json:"ease_factor"`
	IntervalDays    int        `gorm:"not null" json:"interval_days"`
	Repetitions     int        `gorm:"not null" json:"repetitions"`
	NextReviewDate  time.Time  `gorm:"not null;index" json:"next_review_date"`
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	TimesPracticed  int        `gorm:"not null" json:"times_practiced"`
	TimesCorrect    int        `gorm:"not null" json:"times_correct"`
	TimesIncorrect  int        `gorm:"not null" json:"times_incorrect"`
}

// NewState は新規カードの初期状態を返します。
func NewState(now time.Time) State {
	return State{
		LearningStatus: StatusNew,
		EaseFactor:     DefaultEaseFactor,
		IntervalDays:   1,
		Repetitions:    0,
		NextReviewDate: now,
	}
}

// IsDue は date 単位で nextReviewDate が今日以前かを判定します。
func (s State) IsDue(now time.Time) bool {
	if !s.LearningStatus.IsReviewable() {
		return false
	}
	return !dateOf(s.NextReviewDate.In(now.Location())).After(dateOf(now))
}

// dateOf は時刻を切り捨てて同じロケーションの 0:00 を返す
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfNextDay は now の翌日 0:00 を返します。due の検索条件 (< 翌日0時) に使います。
func StartOfNextDay(now time.Time) time.Time {
	return dateOf(now).AddDate(0, 0, 1)
}
