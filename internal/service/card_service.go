//go:generate mockery --name CardService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardService はカードの登録・取得・削除を扱います。検索や編集は持たない。
type CardService interface {
	CreateCard(ctx context.Context, tenantID uuid.UUID, req *model.PostCardRequest) (*model.VocabularyCard, error)
	GetCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.VocabularyCard, error)
	ListCards(ctx context.Context, tenantID uuid.UUID, status *srs.Status) ([]*model.VocabularyCard, error)
	DeleteCard(ctx context.Context, tenantID, cardID uuid.UUID) error
}

type cardService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	now      func() time.Time
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository) CardService {
	return &cardService{
		db:       db,
		cardRepo: cardRepo,
		now:      utcNow,
	}
}

func (s *cardService) CreateCard(ctx context.Context, tenantID uuid.UUID, req *model.PostCardRequest) (*model.VocabularyCard, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var created *model.VocabularyCard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.cardRepo.CheckTermExists(ctx, tx, tenantID, req.Term)
		if err != nil {
			logger.Error("Error checking term existence in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の重複チェックに失敗しました。", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", model.ErrConflict)
		}

		card := &model.VocabularyCard{
			CardID:     uuid.New(),
			TenantID:   tenantID,
			Term:       req.Term,
			Definition: req.Definition,
			State:      srs.NewState(s.now()),
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			logger.Error("Error creating card in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}
		created = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card created", "card_id", created.CardID, "term", created.Term)
	return created, nil
}

func (s *cardService) GetCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.VocabularyCard, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, tenantID, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, tenantID uuid.UUID, status *srs.Status) ([]*model.VocabularyCard, error) {
	cards, err := s.cardRepo.FindByTenant(ctx, s.db, tenantID, model.CardFilter{Status: status})
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	return cards, nil
}

func (s *cardService) DeleteCard(ctx context.Context, tenantID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)
	if err := s.cardRepo.Delete(ctx, s.db, tenantID, cardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
	}
	logger.Info("Card deleted")
	return nil
}
