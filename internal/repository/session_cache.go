//go:generate mockery --name LocalSessionCache --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"

	"go.etcd.io/bbolt"
)

const (
	boltBucketSessions   = "review_sessions"    // key: "<tenant>/<name>" -> StoredSession JSON
	boltBucketTombstones = "session_tombstones" // key: "<tenant>/<name>" -> 消去時刻 (RFC3339Nano)
)

// LocalSessionCache は端末ローカルのセッション保存先です
type LocalSessionCache interface {
	Load(ctx context.Context, key model.SessionKey) (*model.StoredSession, error)
	Save(ctx context.Context, key model.SessionKey, stored *model.StoredSession) error
	// Delete はセッションを消し、消去時刻 clearedAt を墓標として残します
	Delete(ctx context.Context, key model.SessionKey, clearedAt time.Time) error
	// ClearedAt は墓標の時刻を返します。無ければゼロ値
	ClearedAt(ctx context.Context, key model.SessionKey) (time.Time, error)
	Sweep(ctx context.Context, before time.Time) (int, error)
	Close() error
}

type boltSessionCache struct {
	db *bbolt.DB
}

// NewBoltSessionCache は path の bbolt ファイルを開き、バケットを用意します
func NewBoltSessionCache(path string) (LocalSessionCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create session cache dir: %w", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session cache %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{boltBucketSessions, boltBucketTombstones} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &boltSessionCache{db: db}, nil
}

func (c *boltSessionCache) Load(ctx context.Context, key model.SessionKey) (*model.StoredSession, error) {
	var data []byte
	err := c.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketSessions)).Get([]byte(key.String()))
		if v != nil {
			// v はトランザクション内でしか有効でない
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltSessionCache.Load: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var stored model.StoredSession
	if err := json.Unmarshal(data, &stored); err != nil || stored.Session == nil {
		middleware.GetLogger(ctx).Warn("Discarding undecodable cached session",
			"error", err,
			"session_key", key.String(),
		)
		return nil, nil
	}
	return &stored, nil
}

func (c *boltSessionCache) Save(ctx context.Context, key model.SessionKey, stored *model.StoredSession) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("boltSessionCache.Save: marshal: %w", err)
	}
	// 新しく保存したら墓標は不要
	err = c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(boltBucketTombstones)).Delete([]byte(key.String())); err != nil {
			return err
		}
		return tx.Bucket([]byte(boltBucketSessions)).Put([]byte(key.String()), data)
	})
	if err != nil {
		return fmt.Errorf("boltSessionCache.Save: %w", err)
	}
	return nil
}

func (c *boltSessionCache) Delete(ctx context.Context, key model.SessionKey, clearedAt time.Time) error {
	k := []byte(key.String())
	err := c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(boltBucketSessions)).Delete(k); err != nil {
			return err
		}
		return tx.Bucket([]byte(boltBucketTombstones)).Put(k, []byte(clearedAt.UTC().Format(time.RFC3339Nano)))
	})
	if err != nil {
		return fmt.Errorf("boltSessionCache.Delete: %w", err)
	}
	return nil
}

func (c *boltSessionCache) ClearedAt(ctx context.Context, key model.SessionKey) (time.Time, error) {
	var raw string
	err := c.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucketTombstones)).Get([]byte(key.String())); v != nil {
			raw = string(v)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("boltSessionCache.ClearedAt: %w", err)
	}
	if raw == "" {
		return time.Time{}, nil
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("boltSessionCache.ClearedAt: parse %q: %w", raw, err)
	}
	return at, nil
}

// Sweep は before より前に保存されたエントリと、読めないエントリを削除します。
// before より前の墓標も消すが件数には含めない。
func (c *boltSessionCache) Sweep(ctx context.Context, before time.Time) (int, error) {
	removed := 0
	err := c.db.Update(func(tx *bbolt.Tx) error {
		if err := sweepTombstones(tx.Bucket([]byte(boltBucketTombstones)), before); err != nil {
			return err
		}

		b := tx.Bucket([]byte(boltBucketSessions))
		var stale [][]byte
		if err := b.ForEach(func(k, v []byte) error {
			var stored model.StoredSession
			if err := json.Unmarshal(v, &stored); err != nil || stored.SavedAt.Before(before) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("boltSessionCache.Sweep: %w", err)
	}
	return removed, nil
}

func sweepTombstones(b *bbolt.Bucket, before time.Time) error {
	var stale [][]byte
	if err := b.ForEach(func(k, v []byte) error {
		at, err := time.Parse(time.RFC3339Nano, string(v))
		if err != nil || at.Before(before) {
			stale = append(stale, append([]byte(nil), k...))
		}
		return nil
	}); err != nil {
		return err
	}
	for _, k := range stale {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (c *boltSessionCache) Close() error {
	return c.db.Close()
}
