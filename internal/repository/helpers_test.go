package repository

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 6, 4, 10, 30, 0, 0, time.UTC)

// setupTestDB はテストごとに独立したインメモリ sqlite を用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := NewDB(config.DatabaseConfig{Driver: "sqlite", URL: dsn}, logger)
	require.NoError(t, err, "failed to set up sqlite for repository tests")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestCard(tenantID uuid.UUID, term string, state srs.State) *model.VocabularyCard {
	return &model.VocabularyCard{
		CardID:     uuid.New(),
		TenantID:   tenantID,
		Term:       term,
		Definition: term + " の意味",
		State:      state,
	}
}

func stateWith(status srs.Status, next time.Time) srs.State {
	s := srs.NewState(testNow)
	s.LearningStatus = status
	s.NextReviewDate = next
	return s
}
