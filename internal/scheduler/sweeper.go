package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/service"

	"github.com/go-co-op/gocron"
)

const sweepTimeout = 30 * time.Second

// SessionSweeper は期限切れセッションを削除する対象です (*service.SessionStore)
type SessionSweeper interface {
	Sweep(ctx context.Context) (service.SweepResult, error)
}

// Sweeper は期限切れセッションの削除を定期実行します
type Sweeper struct {
	scheduler *gocron.Scheduler
	target    SessionSweeper
	interval  time.Duration
	logger    *slog.Logger
}

func NewSweeper(target SessionSweeper, cfg config.SweeperConfig, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = config.DefaultSweepInterval
	}
	s := gocron.NewScheduler(time.UTC)
	// 前回の削除が終わっていなければ次は飛ばす
	s.SingletonModeAll()
	return &Sweeper{
		scheduler: s,
		target:    target,
		interval:  interval,
		logger:    logger.With("component", "sweeper"),
	}
}

// Start は定期実行を開始します。初回は即時に実行される。
func (s *Sweeper) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.runScheduled); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Session sweeper started", "interval", s.interval)
	return nil
}

func (s *Sweeper) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Session sweeper stopped")
}

func (s *Sweeper) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("Scheduled session sweep failed", "error", err)
	}
}

// RunOnce は1回だけ削除を行います (sweep コマンドからも呼ばれる)
func (s *Sweeper) RunOnce(ctx context.Context) (service.SweepResult, error) {
	ctx = middleware.WithLogger(ctx, s.logger)
	start := time.Now()
	res, err := s.target.Sweep(ctx)
	s.logger.Debug("Session sweep finished", "duration", time.Since(start), "local", res.Local, "remote", res.Remote)
	return res, err
}
