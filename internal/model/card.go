// internal/model/card.go
package model

import (
	"time"

	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabularyCard は単語とその学習状態 (SRS) を表します
type VocabularyCard struct {
	CardID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"card_id"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Term       string    `gorm:"not null" json:"term"`       // 単語
	Definition string    `gorm:"not null" json:"definition"` // 単語の定義

	srs.State `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (VocabularyCard) TableName() string {
	return "vocabulary_cards"
}

// CardFilter は getItems 相当の検索条件です
type CardFilter struct {
	Status *srs.Status
	Limit  int // 0 以下なら無制限
}

// カード作成リクエストDTO
type PostCardRequest struct {
	Term       string `json:"term" validate:"required,max=255"`
	Definition string `json:"definition" validate:"required"`
}
