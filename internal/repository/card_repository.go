//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardRepository は単語カード (Item Store) の永続化を担当します
type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.VocabularyCard) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.VocabularyCard, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.CardFilter) ([]*model.VocabularyCard, error)
	FindDue(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time, limit int) ([]*model.VocabularyCard, error)
	UpdateSchedule(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID, state srs.State) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, term string) (bool, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.VocabularyCard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"tenant_id", card.TenantID.String(),
			"term", card.Term,
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.VocabularyCard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.VocabularyCard
	result := db.WithContext(ctx).Where("tenant_id = ? AND card_id = ?", tenantID, cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrItemNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// FindByTenant は条件に合うカードを作成順に返します
func (r *gormCardRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.CardFilter) ([]*model.VocabularyCard, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.Status != nil {
		query = query.Where("learning_status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var cards []*model.VocabularyCard
	result := query.Order("created_at ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByTenant: %w", result.Error)
	}
	return cards, nil
}

// FindDue は今日までに復習期限が来ている learning / review のカードを期限の古い順に返します。
// 比較は日付単位 (翌日 0 時より前) で行う。
func (r *gormCardRepository) FindDue(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time, limit int) ([]*model.VocabularyCard, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		return []*model.VocabularyCard{}, nil
	}

	var cards []*model.VocabularyCard
	result := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("learning_status IN ?", []srs.Status{srs.StatusLearning, srs.StatusReview}).
		Where("next_review_date < ?", srs.StartOfNextDay(now)).
		Order("next_review_date ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding due cards in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindDue: %w", result.Error)
	}
	return cards, nil
}

// UpdateSchedule はスケジューリング関連のカラムだけを更新します
func (r *gormCardRepository) UpdateSchedule(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID, state srs.State) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"learning_status":   state.LearningStatus,
		"ease_factor":       state.EaseFactor,
		"interval_days":     state.IntervalDays,
		"repetitions":       state.Repetitions,
		"next_review_date":  state.NextReviewDate,
		"last_practiced_at": state.LastPracticedAt,
		"times_practiced":   state.TimesPracticed,
		"times_correct":     state.TimesCorrect,
		"times_incorrect":   state.TimesIncorrect,
	}
	result := tx.WithContext(ctx).Model(&model.VocabularyCard{}).
		Where("tenant_id = ? AND card_id = ?", tenantID, cardID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card schedule in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.UpdateSchedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *gormCardRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND card_id = ?", tenantID, cardID).Delete(&model.VocabularyCard{})
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *gormCardRepository) CheckTermExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, term string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyCard{}).
		Where("tenant_id = ? AND term = ?", tenantID, term).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"term", term,
		)
		return false, fmt.Errorf("gormCardRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}
