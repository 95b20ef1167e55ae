//go:generate mockery --name RemoteSessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RemoteSessionRepository はセッションのリモート側の保存先 (DB) です。
// 別の端末から同じセッションを再開するために使います。
type RemoteSessionRepository interface {
	Load(ctx context.Context, key model.SessionKey) (*model.StoredSession, error)
	Save(ctx context.Context, key model.SessionKey, stored *model.StoredSession) error
	Delete(ctx context.Context, key model.SessionKey) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type gormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) RemoteSessionRepository {
	return &gormSessionRepository{db: db}
}

// Load は保存済みセッションを返します。無ければ nil, nil
func (r *gormSessionRepository) Load(ctx context.Context, key model.SessionKey) (*model.StoredSession, error) {
	logger := middleware.GetLogger(ctx)
	var rec model.ReviewSessionRecord
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND session_key = ?", key.TenantID, key.Name).
		First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error("Error loading review session from DB",
			"error", result.Error,
			"session_key", key.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.Load: %w", result.Error)
	}

	var session model.ReviewSession
	if err := json.Unmarshal(rec.Payload, &session); err != nil {
		// 壊れた行は存在しないものとして扱う
		logger.Warn("Discarding undecodable review session payload",
			"error", err,
			"session_key", key.String(),
		)
		return nil, nil
	}
	return &model.StoredSession{SavedAt: rec.SavedAt, Session: &session}, nil
}

// Save は同じキーの行があれば上書きします
func (r *gormSessionRepository) Save(ctx context.Context, key model.SessionKey, stored *model.StoredSession) error {
	logger := middleware.GetLogger(ctx)
	payload, err := json.Marshal(stored.Session)
	if err != nil {
		return fmt.Errorf("gormSessionRepository.Save: marshal: %w", err)
	}

	rec := model.ReviewSessionRecord{
		TenantID:   key.TenantID,
		SessionKey: key.Name,
		Payload:    payload,
		SavedAt:    stored.SavedAt,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "session_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "saved_at"}),
	}).Create(&rec)
	if result.Error != nil {
		logger.Error("Error saving review session to DB",
			"error", result.Error,
			"session_key", key.String(),
		)
		return fmt.Errorf("gormSessionRepository.Save: %w", result.Error)
	}
	return nil
}

// Delete は行が無くてもエラーにしません
func (r *gormSessionRepository) Delete(ctx context.Context, key model.SessionKey) error {
	logger := middleware.GetLogger(ctx)
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND session_key = ?", key.TenantID, key.Name).
		Delete(&model.ReviewSessionRecord{})
	if result.Error != nil {
		logger.Error("Error deleting review session from DB",
			"error", result.Error,
			"session_key", key.String(),
		)
		return fmt.Errorf("gormSessionRepository.Delete: %w", result.Error)
	}
	return nil
}

// DeleteExpired は before より前に保存された行を削除し、件数を返します
func (r *gormSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := r.db.WithContext(ctx).Where("saved_at < ?", before).Delete(&model.ReviewSessionRecord{})
	if result.Error != nil {
		logger.Error("Error deleting expired review sessions from DB", "error", result.Error)
		return 0, fmt.Errorf("gormSessionRepository.DeleteExpired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
