// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  driver: sqlite
  url: "file:test.db"
server:
  port: ":9090"
app:
  review_limit: 30
  session_ttl: 12h
auth:
  enabled: false
sync:
  max_retries: 5
  base_delay: 250ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, "sqlite", Cfg.Database.Driver)
	assert.Equal(t, "file:test.db", Cfg.Database.URL)
	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, 30, Cfg.App.ReviewLimit)
	assert.Equal(t, 12*time.Hour, Cfg.App.SessionTTL)
	assert.False(t, Cfg.Auth.Enabled)
	assert.Equal(t, 5, Cfg.Sync.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, Cfg.Sync.BaseDelay)
	// 未指定の項目は既定値
	assert.Equal(t, DefaultSyncQueueSize, Cfg.Sync.QueueSize)
	assert.Equal(t, DefaultCachePath, Cfg.Cache.Path)
	assert.Equal(t, DefaultSweepInterval, Cfg.Sweeper.Interval)
}

func TestLoadConfig_AuthRequiresSecret(t *testing.T) {
	dir := t.TempDir()
	yaml := `
auth:
  enabled: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_SyncMaxRetries(t *testing.T) {
	tests := []struct {
		name string
		sync string
		want int
	}{
		{name: "0 を指定するとリトライしない", sync: "sync:\n  max_retries: 0\n", want: 0},
		{name: "指定した回数を使う", sync: "sync:\n  max_retries: 7\n", want: 7},
		{name: "未指定なら既定値", sync: "", want: DefaultSyncMaxRetries},
		{name: "負の値は既定値", sync: "sync:\n  max_retries: -1\n", want: DefaultSyncMaxRetries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			yaml := "auth:\n  enabled: false\n" + tt.sync
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

			require.NoError(t, LoadConfig(dir))
			assert.Equal(t, tt.want, Cfg.Sync.MaxRetries)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{Driver: "sqlite"}, Sync: SyncConfig{MaxRetries: -1}}
	applyDefaults(&cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultSQLitePath, cfg.Database.URL)
	assert.Equal(t, DefaultAppReviewLimit, cfg.App.ReviewLimit)
	assert.Equal(t, DefaultSessionTTL, cfg.App.SessionTTL)
	assert.Equal(t, DefaultSyncMaxRetries, cfg.Sync.MaxRetries)
}
