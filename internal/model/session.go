// internal/model/session.go
package model

import (
	"fmt"
	"strings"
	"time"

	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const maxSessionNameLen = 64

// SessionKey はセッションの保存先を特定する識別子です。
// Name は呼び出し側 (端末やタブ) が決める。別端末から同じ Name を使えば同じセッションを再開できる。
type SessionKey struct {
	TenantID uuid.UUID
	Name     string
}

// NewSessionKey は入力をチェックして SessionKey を作ります。
func NewSessionKey(tenantID uuid.UUID, name string) (SessionKey, error) {
	if tenantID == uuid.Nil {
		return SessionKey{}, fmt.Errorf("%w: tenant id is empty", ErrInvalidInput)
	}
	if name == "" || len(name) > maxSessionNameLen || strings.ContainsAny(name, "/ \t\n") {
		return SessionKey{}, fmt.Errorf("%w: invalid session name %q", ErrInvalidInput, name)
	}
	return SessionKey{TenantID: tenantID, Name: name}, nil
}

func (k SessionKey) String() string {
	return k.TenantID.String() + "/" + k.Name
}

// SessionCard はセッション開始時点のカードのスナップショット
type SessionCard struct {
	CardID     uuid.UUID `json:"card_id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	srs.State
}

func NewSessionCard(c *VocabularyCard) SessionCard {
	return SessionCard{
		CardID:     c.CardID,
		Term:       c.Term,
		Definition: c.Definition,
		State:      c.State,
	}
}

// SessionStats は評価区分ごとの件数
type SessionStats struct {
	Again    int `json:"again"`
	Hard     int `json:"hard"`
	Good     int `json:"good"`
	Easy     int `json:"easy"`
	Reviewed int `json:"reviewed"`
	Correct  int `json:"correct"`
}

// ReviewSession は1回分の復習セッションです。Cards は開始時に固定されます。
type ReviewSession struct {
	SessionKey   string        `json:"session_key"`
	Cards        []SessionCard `json:"cards"`
	CurrentIndex int           `json:"current_index"`
	Stats        SessionStats  `json:"session_stats"`
	StartedAt    time.Time     `json:"started_at"`
}

// IsCompleted は全カードを回答済みかどうか
func (s *ReviewSession) IsCompleted() bool {
	return s.CurrentIndex >= len(s.Cards)
}

// IndexOf はカードの位置を返します。見つからなければ -1。
func (s *ReviewSession) IndexOf(cardID uuid.UUID) int {
	for i, c := range s.Cards {
		if c.CardID == cardID {
			return i
		}
	}
	return -1
}

// Record は回答結果を集計し、カーソルを1つ進めます。
func (s *ReviewSession) Record(rating srs.Rating) {
	switch rating.Bucket() {
	case srs.BucketAgain:
		s.Stats.Again++
	case srs.BucketHard:
		s.Stats.Hard++
	case srs.BucketGood:
		s.Stats.Good++
	case srs.BucketEasy:
		s.Stats.Easy++
	}
	s.Stats.Reviewed++
	if rating.IsSuccess() {
		s.Stats.Correct++
	}
	if s.CurrentIndex < len(s.Cards) {
		s.CurrentIndex++
	}
}

// StoredSession は保存時刻付きのセッション (ローカルキャッシュの値)
type StoredSession struct {
	SavedAt time.Time      `json:"saved_at"`
	Session *ReviewSession `json:"session"`
}

// ReviewSessionRecord はリモート側 (DB) に保存するセッション
type ReviewSessionRecord struct {
	TenantID   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SessionKey string         `gorm:"type:varchar(64);primaryKey"`
	Payload    datatypes.JSON `gorm:"not null"`
	SavedAt    time.Time      `gorm:"not null;index"`
}

func (ReviewSessionRecord) TableName() string {
	return "review_sessions"
}

// セッション開始リクエストDTO
type StartSessionRequest struct {
	MaxCards int `json:"max_cards" validate:"omitempty,min=1,max=200"`
}

// 回答送信リクエストDTO
// rating の範囲チェックは srs.ParseRating で行う (INVALID_RATING を返すため)
type SubmitReviewRequest struct {
	CardID string `json:"card_id" validate:"required,uuid"`
	Rating *int   `json:"rating" validate:"required"`
}

// ReviewResponse は回答後のセッションを返すレスポンス
type ReviewResponse struct {
	Session *ReviewSession `json:"session"`
	Warning string         `json:"warning,omitempty"`
}
