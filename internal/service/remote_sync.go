package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
)

const (
	remoteCallTimeout     = 5 * time.Second
	remoteShutdownTimeout = 5 * time.Second
)

type remoteOp int

const (
	remoteOpSave remoteOp = iota
	remoteOpDelete
)

func (o remoteOp) String() string {
	if o == remoteOpDelete {
		return "delete"
	}
	return "save"
}

type remoteTask struct {
	op     remoteOp
	key    model.SessionKey
	stored *model.StoredSession
	logger *slog.Logger
}

// SyncStats はリモート同期の累計件数です
type SyncStats struct {
	Queued    int64 `json:"queued"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Dropped   int64 `json:"dropped"`
}

// remoteSyncer はリモート側への書き込みを1本のワーカーで順番に処理します。
// 呼び出し側は結果を待たない。失敗はリトライ後にログと Stats に残る。
type remoteSyncer struct {
	remote     repository.RemoteSessionRepository
	tasks      chan remoteTask
	maxRetries int
	baseDelay  time.Duration
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex // tasks への送信と close の排他
	closed bool

	queued, succeeded, failed, dropped atomic.Int64
}

func newRemoteSyncer(remote repository.RemoteSessionRepository, cfg config.SyncConfig, logger *slog.Logger) *remoteSyncer {
	if logger == nil {
		logger = slog.Default()
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = config.DefaultSyncQueueSize
	}
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = config.DefaultSyncBaseDelay
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &remoteSyncer{
		remote:     remote,
		tasks:      make(chan remoteTask, queueSize),
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	s.wg.Add(1)
	go s.run()

	return s
}

// enqueue はタスクをキューに積みます。満杯なら一番古いタスクを捨てる。
func (s *remoteSyncer) enqueue(task remoteTask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.dropped.Add(1)
		task.logger.Warn("[REMOTE-SYNC] Syncer closed, dropping task",
			"op", task.op.String(),
			"session_key", task.key.String(),
		)
		return
	}

	select {
	case s.tasks <- task:
		s.queued.Add(1)
		return
	default:
	}

	select {
	case old := <-s.tasks:
		s.dropped.Add(1)
		task.logger.Warn("[REMOTE-SYNC] Queue full, dropped oldest task",
			"dropped_op", old.op.String(),
			"dropped_session_key", old.key.String(),
			"queue_len", len(s.tasks),
		)
	default:
	}

	select {
	case s.tasks <- task:
		s.queued.Add(1)
	default:
		// ワーカー以外に受信者はいないので通常ここには来ない
		s.dropped.Add(1)
		task.logger.Warn("[REMOTE-SYNC] Failed to queue task after dropping oldest",
			"op", task.op.String(),
			"session_key", task.key.String(),
		)
	}
}

func (s *remoteSyncer) run() {
	defer s.wg.Done()

	for task := range s.tasks {
		if err := s.process(task); err != nil {
			s.failed.Add(1)
			task.logger.Error("[REMOTE-SYNC] Remote session write failed",
				"op", task.op.String(),
				"session_key", task.key.String(),
				"error", err,
			)
			continue
		}
		s.succeeded.Add(1)
	}
}

// process は1つのタスクを maxRetries 回までリトライしながら実行します
func (s *remoteSyncer) process(task remoteTask) error {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.baseDelay * time.Duration(1<<(attempt-1))
			task.logger.Debug("[REMOTE-SYNC] Retrying remote session write",
				"op", task.op.String(),
				"session_key", task.key.String(),
				"attempt", attempt+1,
				"delay", delay,
			)
			select {
			case <-time.After(delay):
			case <-s.ctx.Done():
				return fmt.Errorf("shutdown before retry %d: %w", attempt, err)
			}
		}

		err = s.call(task)
		if err == nil {
			return nil
		}
	}
	return fmt.Errorf("after %d attempts: %w", s.maxRetries+1, err)
}

func (s *remoteSyncer) call(task remoteTask) error {
	ctx, cancel := context.WithTimeout(middleware.WithLogger(s.ctx, task.logger), remoteCallTimeout)
	defer cancel()

	switch task.op {
	case remoteOpDelete:
		return s.remote.Delete(ctx, task.key)
	default:
		return s.remote.Save(ctx, task.key, task.stored)
	}
}

func (s *remoteSyncer) Stats() SyncStats {
	return SyncStats{
		Queued:    s.queued.Load(),
		Succeeded: s.succeeded.Load(),
		Failed:    s.failed.Load(),
		Dropped:   s.dropped.Load(),
	}
}

// Close は新しいタスクの受付を止め、残っているタスクを処理してからワーカーを止めます。
// 時間内に終わらなければ実行中のリトライを打ち切る。
func (s *remoteSyncer) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	remaining := len(s.tasks)
	close(s.tasks)
	s.mu.Unlock()

	s.logger.Info("[REMOTE-SYNC] Closing", "queue_remaining", remaining)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("[REMOTE-SYNC] Worker stopped gracefully")
	case <-time.After(remoteShutdownTimeout):
		s.logger.Warn("[REMOTE-SYNC] Worker shutdown timeout, cancelling pending writes")
		s.cancel()
		<-done
	}
	s.cancel()

	stats := s.Stats()
	s.logger.Info("[REMOTE-SYNC] Final stats",
		"queued", stats.Queued,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"dropped", stats.Dropped,
	)
	return nil
}
