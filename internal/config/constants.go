// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab-srs"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseDriver = "postgres"
	DefaultSQLitePath     = "data/vocab_srs.db"
	DefaultLogLevel       = "info"
	DefaultAppReviewLimit = 20
	DefaultSessionTTL     = 24 * time.Hour
	DefaultCachePath      = "data/session_cache.bolt"
	DefaultSyncQueueSize  = 100
	DefaultSyncMaxRetries = 3
	DefaultSyncBaseDelay  = 100 * time.Millisecond
	DefaultSweepInterval  = time.Hour
)
