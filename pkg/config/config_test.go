package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScan(t *testing.T) {
	path := writeConfig(t, `
server:
  mode: release
  host: 0.0.0.0
  port: 9000
  metrics: true
bizDB:
  type: mysql
  user: root
  password: pwd
  host: 127.0.0.1
  port: 3306
  database: eventmarket
redis:
  addr: 127.0.0.1:6379
feed:
  policy: debounce
  debounceMillis: 500
retry:
  delay: 1
  attempts: 2
`)

	cfg, err := Scan(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.EnableMetric())
	assert.Equal(t, "debounce", cfg.GetFeedPolicy())
	assert.Equal(t, 500, cfg.Feed.DebounceMillis)
	// 未配置项走默认值
	assert.Equal(t, 256, cfg.Server.QueueSize)
	assert.Same(t, cfg, SysConfig)
}

func TestScanDefaults(t *testing.T) {
	path := writeConfig(t, `
bizDB:
  type: mysql
retry:
  delay: 1
  attempts: 1
`)

	cfg, err := Scan(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "immediate", cfg.GetFeedPolicy())
}

func TestScanInvalidRetry(t *testing.T) {
	path := writeConfig(t, `
bizDB:
  type: mysql
retry:
  delay: 1
  attempts: 9
`)

	_, err := Scan(path)
	assert.Error(t, err)
}

func TestScanInvalidFeedPolicy(t *testing.T) {
	path := writeConfig(t, `
bizDB:
  type: mysql
feed:
  policy: eager
retry:
  delay: 1
  attempts: 1
`)

	_, err := Scan(path)
	assert.Error(t, err)
}
