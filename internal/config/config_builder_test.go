package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", DefaultFeedURL: "https://feed.example.com"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://feed.example.com", cfg.App.DefaultFeedURL)
}

func TestBuild_RejectsMalformedURL(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{CloudAddress: "localhost"}})

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cloud address")
}

// ── withFlagArgs / withJSON ───────────────────────────────────────────────────

func TestWithFlagArgs_ParsesValues(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{
		"-cloud", "https://cloud.example.com",
		"-sync-timeout", "20s",
		"-d", "locker.db",
	})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, "https://cloud.example.com", cfg.Adapter.CloudAddress)
	assert.Equal(t, 20*time.Second, cfg.Workers.DeviceSyncTimeout)
	assert.Equal(t, "locker.db", cfg.Storage.DB.DSN)
}

func TestWithFlagArgs_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{"-nope"})
	assert.Error(t, b.err)
}

func TestWithJSON_MergedOnTop(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"default_feed_url": "https://json-feed.example.com"},
		"workers": map[string]any{"device_sync_timeout": "30s"},
	})

	b := newConfigBuilder().withFlagArgs([]string{"-c", path, "-feed", "https://flag-feed.example.com"}).withJSON()
	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://json-feed.example.com", cfg.App.DefaultFeedURL)
	assert.Equal(t, 30*time.Second, cfg.Workers.DeviceSyncTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{"-config", "/does/not/exist.json"}).withJSON()
	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFlagArgs(nil).withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
