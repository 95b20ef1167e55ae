package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
)

// SessionStore は復習セッションをローカル (bbolt) とリモート (DB) の2段で保存します。
// ローカルへの書き込みは同期、リモートへの書き込みは remoteSyncer に任せて待たない。
// 保存から TTL を過ぎたセッションはどちらの段でも存在しないものとして扱う。
type SessionStore struct {
	local  repository.LocalSessionCache
	remote repository.RemoteSessionRepository
	syncer *remoteSyncer
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionStore(local repository.LocalSessionCache, remote repository.RemoteSessionRepository, cfg config.Config, logger *slog.Logger) *SessionStore {
	ttl := cfg.App.SessionTTL
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}
	return &SessionStore{
		local:  local,
		remote: remote,
		syncer: newRemoteSyncer(remote, cfg.Sync, logger),
		ttl:    ttl,
		now:    utcNow,
	}
}

func (s *SessionStore) expired(stored *model.StoredSession) bool {
	return s.now().Sub(stored.SavedAt) > s.ttl
}

// Load はセッションを返します。どこにも無い、または期限切れなら nil, nil
func (s *SessionStore) Load(ctx context.Context, key model.SessionKey) (*model.ReviewSession, error) {
	logger := middleware.GetLogger(ctx).With("session_key", key.String())

	stored, localErr := s.local.Load(ctx, key)
	if localErr != nil {
		logger.Warn("Failed to read local session cache, falling back to remote", "error", localErr)
	} else if stored != nil {
		if !s.expired(stored) {
			return stored.Session, nil
		}
		logger.Info("Local session expired", "saved_at", stored.SavedAt)
	}

	remoteStored, remoteErr := s.remote.Load(ctx, key)
	if remoteErr != nil {
		if localErr != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習セッションの読み込みに失敗しました。", "", fmt.Errorf("%w: %w", model.ErrInternalServer, errors.Join(localErr, remoteErr)))
		}
		logger.Warn("Failed to load remote session, treating as absent", "error", remoteErr)
		return nil, nil
	}
	if remoteStored == nil || remoteStored.Session == nil {
		return nil, nil
	}
	if s.expired(remoteStored) {
		logger.Info("Remote session expired", "saved_at", remoteStored.SavedAt)
		return nil, nil
	}

	// この端末で消したセッションは、リモートの削除が未反映でも復活させない
	clearedAt, err := s.local.ClearedAt(ctx, key)
	if err != nil {
		logger.Warn("Failed to read session tombstone", "error", err)
	} else if !clearedAt.IsZero() && !remoteStored.SavedAt.After(clearedAt) {
		logger.Info("Ignoring remote session saved before clear",
			"saved_at", remoteStored.SavedAt,
			"cleared_at", clearedAt,
		)
		return nil, nil
	}

	// 保存時刻はリモートのものを引き継ぐ (期限が延びないように)
	if err := s.local.Save(ctx, key, remoteStored); err != nil {
		logger.Warn("Failed to repopulate local session cache", "error", err)
	}
	logger.Info("Session restored from remote store", "current_index", remoteStored.Session.CurrentIndex)
	return remoteStored.Session, nil
}

// Save はローカルに書き込んだ後、リモートへの書き込みを依頼します。
// ローカルの失敗は ErrPersistenceWrite を包んで返すが、リモートへの依頼は行う。
func (s *SessionStore) Save(ctx context.Context, key model.SessionKey, session *model.ReviewSession) error {
	logger := middleware.GetLogger(ctx).With("session_key", key.String())
	stored := &model.StoredSession{SavedAt: s.now(), Session: session}

	var localErr error
	if err := s.local.Save(ctx, key, stored); err != nil {
		logger.Error("Failed to write session to local cache", "error", err)
		localErr = fmt.Errorf("%w: %v", model.ErrPersistenceWrite, err)
	}

	s.syncer.enqueue(remoteTask{
		op:     remoteOpSave,
		key:    key,
		stored: &model.StoredSession{SavedAt: stored.SavedAt, Session: cloneSession(session)},
		logger: logger,
	})
	return localErr
}

// Clear は両方の段からセッションを消します。リモート側の失敗は返さない。
// ローカルには消去時刻の墓標を残し、それ以前に保存されたリモートの行は Load で無視する。
func (s *SessionStore) Clear(ctx context.Context, key model.SessionKey) error {
	logger := middleware.GetLogger(ctx).With("session_key", key.String())

	var localErr error
	if err := s.local.Delete(ctx, key, s.now()); err != nil {
		logger.Error("Failed to delete session from local cache", "error", err)
		localErr = fmt.Errorf("%w: %v", model.ErrPersistenceWrite, err)
	}

	s.syncer.enqueue(remoteTask{op: remoteOpDelete, key: key, logger: logger})
	return localErr
}

// SweepResult は Sweep で削除した件数
type SweepResult struct {
	Local  int   `json:"local"`
	Remote int64 `json:"remote"`
}

// Sweep は期限切れのセッションを両方の段から削除します
func (s *SessionStore) Sweep(ctx context.Context) (SweepResult, error) {
	logger := middleware.GetLogger(ctx)
	cutoff := s.now().Add(-s.ttl)

	var res SweepResult
	var errs []error

	n, err := s.local.Sweep(ctx, cutoff)
	if err != nil {
		errs = append(errs, err)
	}
	res.Local = n

	m, err := s.remote.DeleteExpired(ctx, cutoff)
	if err != nil {
		errs = append(errs, err)
	}
	res.Remote = m

	logger.Info("Expired sessions swept", "local", res.Local, "remote", res.Remote, "cutoff", cutoff)
	return res, errors.Join(errs...)
}

func (s *SessionStore) SyncStats() SyncStats {
	return s.syncer.Stats()
}

// Close はリモート同期を止めます。ローカルキャッシュは呼び出し側が閉じる。
func (s *SessionStore) Close() error {
	return s.syncer.Close()
}

// cloneSession はリモート書き込み用のコピーを作ります。
// 元のセッションは書き込み完了前に次の回答で更新されうる。
func cloneSession(src *model.ReviewSession) *model.ReviewSession {
	if src == nil {
		return nil
	}
	dst := *src
	dst.Cards = append([]model.SessionCard(nil), src.Cards...)
	return &dst
}
