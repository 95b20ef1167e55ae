package main

import (
	"errors"
	"fmt"
	"log/slog"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/service"

	"gorm.io/gorm"
)

// backends は DB とセッションの2段の保存先をまとめたもの
type backends struct {
	db    *gorm.DB
	cache repository.LocalSessionCache
	store *service.SessionStore
}

func openBackends(cfg config.Config, logger *slog.Logger) (*backends, error) {
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	cache, err := repository.NewBoltSessionCache(cfg.Cache.Path)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("open session cache: %w", err)
	}

	remote := repository.NewGormSessionRepository(db)
	store := service.NewSessionStore(cache, remote, cfg, logger)
	return &backends{db: db, cache: cache, store: store}, nil
}

// Close はリモート同期を流し切ってからキャッシュと DB を閉じます
func (b *backends) Close(logger *slog.Logger) error {
	var errs []error
	if err := b.store.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := b.cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close session cache: %w", err))
	}
	closeDB(b.db, logger)
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", slog.Any("error", err))
		return
	}
	logger.Info("Database connection closed.")
}
