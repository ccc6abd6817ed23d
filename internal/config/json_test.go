package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {"default_feed_url": "https://feed.example.com", "user_token": "tok"},
		"storage": {"db": {"dsn": "locker.db"}},
		"adapter": {
			"cloud_address": "https://cloud.example.com",
			"device_bridge_address": "http://127.0.0.1:9300",
			"request_timeout": "5s",
			"fetch_batch_size": 10,
			"fetch_cache_ttl": 60000000000
		},
		"workers": {"device_sync_timeout": "15s", "fast_path_batch_size": 1}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "https://feed.example.com", cfg.App.DefaultFeedURL)
	assert.Equal(t, "tok", cfg.App.UserToken)
	assert.Equal(t, "locker.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10, cfg.Adapter.FetchBatchSize)
	assert.Equal(t, time.Minute, cfg.Adapter.FetchCacheTTL)
	assert.Equal(t, 15*time.Second, cfg.Workers.DeviceSyncTimeout)
	assert.Equal(t, 1, cfg.Workers.FastPathBatchSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"later"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
