package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 6, 4, 10, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// identityShuffle は順番を変えない
func identityShuffle(int, func(i, j int)) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{ReviewLimit: 10, SessionTTL: 24 * time.Hour},
		Sync: config.SyncConfig{
			QueueSize:  16,
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
		},
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := repository.NewDB(config.DatabaseConfig{Driver: "sqlite", URL: dsn}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupTestCache(t *testing.T) repository.LocalSessionCache {
	t.Helper()
	cache, err := repository.NewBoltSessionCache(filepath.Join(t.TempDir(), "sessions.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

// testEnv は実際の sqlite / bbolt を使ってサービス一式を組み立てたもの
type testEnv struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	remote   repository.RemoteSessionRepository
	cache    repository.LocalSessionCache
	store    *SessionStore
	selector *CardSelector
	review   *reviewService
	tenantID uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	cardRepo := repository.NewGormCardRepository()
	remote := repository.NewGormSessionRepository(db)
	cache := setupTestCache(t)

	store := NewSessionStore(cache, remote, testConfig(), discardLogger())
	store.now = fixedClock(testNow)
	t.Cleanup(func() { store.Close() })

	selector := NewCardSelector(db, cardRepo, testConfig().App.ReviewLimit)
	selector.now = fixedClock(testNow)
	selector.shuffle = identityShuffle

	review := NewReviewService(db, cardRepo, selector, store).(*reviewService)
	review.now = fixedClock(testNow)

	return &testEnv{
		db:       db,
		cardRepo: cardRepo,
		remote:   remote,
		cache:    cache,
		store:    store,
		selector: selector,
		review:   review,
		tenantID: uuid.New(),
	}
}

func (e *testEnv) key(t *testing.T, name string) model.SessionKey {
	t.Helper()
	key, err := model.NewSessionKey(e.tenantID, name)
	require.NoError(t, err)
	return key
}

// addCards は指定ステータスのカードを n 件登録します。due 系は期限を昨日にする。
func (e *testEnv) addCards(t *testing.T, status srs.Status, n int, prefix string) []*model.VocabularyCard {
	t.Helper()
	ctx := context.Background()
	cards := make([]*model.VocabularyCard, 0, n)
	for i := 0; i < n; i++ {
		state := srs.NewState(testNow)
		state.LearningStatus = status
		if status != srs.StatusNew {
			state.NextReviewDate = testNow.AddDate(0, 0, -1).Add(time.Duration(i) * time.Minute)
		}
		card := &model.VocabularyCard{
			CardID:     uuid.New(),
			TenantID:   e.tenantID,
			Term:       prefix + string(rune('a'+i)),
			Definition: "def",
			State:      state,
			CreatedAt:  testNow.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, e.cardRepo.Create(ctx, e.db, card))
		cards = append(cards, card)
	}
	return cards
}
