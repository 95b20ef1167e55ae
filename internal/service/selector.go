package service

import (
	"context"
	"math/rand"
	"time"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// CardSelector は復習対象 (due) と未学習 (new) のカードを選び、セッションの候補を作ります。読み取り専用。
type CardSelector struct {
	db           *gorm.DB
	cardRepo     repository.CardRepository
	defaultLimit int
	now          func() time.Time
	shuffle      func(n int, swap func(i, j int))
}

func NewCardSelector(db *gorm.DB, cardRepo repository.CardRepository, defaultLimit int) *CardSelector {
	return &CardSelector{
		db:           db,
		cardRepo:     cardRepo,
		defaultLimit: defaultLimit,
		now:          utcNow,
		shuffle:      rand.Shuffle,
	}
}

// SelectDueCards は今日が期限の learning / review カードを期限の古い順に最大 limit 件返します
func (s *CardSelector) SelectDueCards(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.VocabularyCard, error) {
	if limit <= 0 {
		return []*model.VocabularyCard{}, nil
	}
	cards, err := s.cardRepo.FindDue(ctx, s.db, tenantID, s.now(), limit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習カードの取得に失敗しました。", "", err)
	}
	return cards, nil
}

// SelectNewCards は未学習カードを作成順に最大 limit 件返します
func (s *CardSelector) SelectNewCards(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.VocabularyCard, error) {
	if limit <= 0 {
		return []*model.VocabularyCard{}, nil
	}
	status := srs.StatusNew
	cards, err := s.cardRepo.FindByTenant(ctx, s.db, tenantID, model.CardFilter{Status: &status, Limit: limit})
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "未学習カードの取得に失敗しました。", "", err)
	}
	return cards, nil
}

// poolQuotas は due を ceil(0.8*max)、new を floor(0.2*max) 件とする
func poolQuotas(maxCards int) (due, fresh int) {
	return (4*maxCards + 4) / 5, maxCards / 5
}

// BuildSessionPool は due と new を混ぜて maxCards 件までに切り詰め、シャッフルして返します。
// 重み付けはしない。
func (s *CardSelector) BuildSessionPool(ctx context.Context, tenantID uuid.UUID, maxCards int) ([]*model.VocabularyCard, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)
	if maxCards <= 0 {
		maxCards = s.defaultLimit
	}
	dueQuota, newQuota := poolQuotas(maxCards)

	due, err := s.SelectDueCards(ctx, tenantID, dueQuota)
	if err != nil {
		return nil, err
	}
	fresh, err := s.SelectNewCards(ctx, tenantID, newQuota)
	if err != nil {
		return nil, err
	}

	pool := make([]*model.VocabularyCard, 0, len(due)+len(fresh))
	pool = append(pool, due...)
	pool = append(pool, fresh...)
	if len(pool) > maxCards {
		pool = pool[:maxCards]
	}
	s.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	logger.Info("Session pool built", "max_cards", maxCards, "due", len(due), "new", len(fresh), "pool", len(pool))
	return pool, nil
}
