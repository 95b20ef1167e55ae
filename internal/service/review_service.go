//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は復習セッションの開始・再開・回答・完了と統計を扱います
type ReviewService interface {
	StartSession(ctx context.Context, key model.SessionKey, maxCards int) (*model.ReviewSession, error)
	ResumeOrStartSession(ctx context.Context, key model.SessionKey, maxCards int) (*model.ReviewSession, error)
	LoadSession(ctx context.Context, key model.SessionKey) (*model.ReviewSession, error)
	ProcessReview(ctx context.Context, key model.SessionKey, session *model.ReviewSession, cardID uuid.UUID, rating int) (*model.ReviewSession, error)
	CompleteSession(ctx context.Context, key model.SessionKey, session *model.ReviewSession) error
	GetStats(ctx context.Context, tenantID uuid.UUID) (*srs.Stats, error)
}

type reviewService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	selector *CardSelector
	store    *SessionStore
	now      func() time.Time
}

func NewReviewService(db *gorm.DB, cardRepo repository.CardRepository, selector *CardSelector, store *SessionStore) ReviewService {
	return &reviewService{
		db:       db,
		cardRepo: cardRepo,
		selector: selector,
		store:    store,
		now:      utcNow,
	}
}

// StartSession は新しい候補でセッションを作り、保存します。
// ローカル保存に失敗した場合はセッションとエラーを両方返す。
func (s *reviewService) StartSession(ctx context.Context, key model.SessionKey, maxCards int) (*model.ReviewSession, error) {
	logger := middleware.GetLogger(ctx).With("session_key", key.String())

	pool, err := s.selector.BuildSessionPool(ctx, key.TenantID, maxCards)
	if err != nil {
		logger.Error("Failed to build session pool", "error", err)
		return nil, err
	}

	session := &model.ReviewSession{
		SessionKey:   key.Name,
		Cards:        make([]model.SessionCard, 0, len(pool)),
		CurrentIndex: 0,
		StartedAt:    s.now(),
	}
	for _, c := range pool {
		session.Cards = append(session.Cards, model.NewSessionCard(c))
	}

	if err := s.store.Save(ctx, key, session); err != nil {
		logger.Warn("Session started but could not be persisted locally", "error", err)
		return session, err
	}

	logger.Info("Review session started", "cards", len(session.Cards))
	return session, nil
}

// ResumeOrStartSession は未完了の保存済みセッションがあればそのまま返し、無ければ新しく開始します
func (s *reviewService) ResumeOrStartSession(ctx context.Context, key model.SessionKey, maxCards int) (*model.ReviewSession, error) {
	logger := middleware.GetLogger(ctx).With("session_key", key.String())

	existing, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.IsCompleted() {
		logger.Info("Resuming review session", "current_index", existing.CurrentIndex, "cards", len(existing.Cards))
		return existing, nil
	}
	return s.StartSession(ctx, key, maxCards)
}

// LoadSession は保存済みの未完了セッションを返します。無ければ ErrSessionNotFound
func (s *reviewService) LoadSession(ctx context.Context, key model.SessionKey) (*model.ReviewSession, error) {
	session, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// ProcessReview は回答を DB 上のカードに反映し、セッションを1つ進めて保存します。
// 計算には保存済みのカードを使い、セッション内のスナップショットは更新しない。
func (s *reviewService) ProcessReview(ctx context.Context, key model.SessionKey, session *model.ReviewSession, cardID uuid.UUID, rating int) (*model.ReviewSession, error) {
	logger := middleware.GetLogger(ctx).With("session_key", key.String(), "card_id", cardID)

	r, err := srs.ParseRating(rating)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}
	if session.IsCompleted() {
		return nil, model.ErrSessionCompleted
	}
	if session.IndexOf(cardID) < 0 {
		logger.Warn("Card is not part of the session")
		return nil, model.ErrItemNotFound
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, key.TenantID, cardID)
		if err != nil {
			return err
		}
		next := srs.Apply(card.State, r, now)
		if err := s.cardRepo.UpdateSchedule(ctx, tx, key.TenantID, cardID, next); err != nil {
			return err
		}
		logger.Debug("Card rescheduled",
			"rating", r.String(),
			"status", next.LearningStatus,
			"interval_days", next.IntervalDays,
			"ease_factor", next.EaseFactor,
		)
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Card in session no longer exists", "error", err)
			return nil, model.ErrItemNotFound
		}
		logger.Error("Failed to apply review to card", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", err)
	}

	session.Record(r)

	if err := s.store.Save(ctx, key, session); err != nil {
		logger.Warn("Review applied but session progress could not be persisted locally", "error", err)
		return session, err
	}
	return session, nil
}

// CompleteSession は両方の段からセッションを消します。カードは回答ごとに更新済み。
func (s *reviewService) CompleteSession(ctx context.Context, key model.SessionKey, session *model.ReviewSession) error {
	logger := middleware.GetLogger(ctx).With("session_key", key.String())
	if err := s.store.Clear(ctx, key); err != nil {
		return err
	}
	if session != nil {
		logger.Info("Review session completed",
			"reviewed", session.Stats.Reviewed,
			"correct", session.Stats.Correct,
			"cards", len(session.Cards),
		)
	}
	return nil
}

// GetStats は全カードから統計を計算します。キャッシュはしない。
func (s *reviewService) GetStats(ctx context.Context, tenantID uuid.UUID) (*srs.Stats, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	cards, err := s.cardRepo.FindByTenant(ctx, s.db, tenantID, model.CardFilter{})
	if err != nil {
		logger.Error("Failed to load cards for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	states := make([]srs.State, 0, len(cards))
	for _, c := range cards {
		states = append(states, c.State)
	}
	stats := srs.ComputeStats(states, s.now())
	return &stats, nil
}
