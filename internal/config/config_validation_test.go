package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStructured() *StructuredConfig {
	return &StructuredConfig{
		App:     App{DefaultFeedURL: "https://feed.example.com"},
		Storage: Storage{DB: DB{DSN: "locker.db"}},
		Adapter: Adapter{
			CloudAddress:        "https://cloud.example.com",
			DeviceBridgeAddress: "http://127.0.0.1:9300",
		},
	}
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(validStructured())

	assert.NoError(t, cfg.validate())
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultFetchBatchSize, cfg.Adapter.FetchBatchSize)
	assert.Equal(t, DefaultDeviceSyncTimeout, cfg.Workers.DeviceSyncTimeout)
	assert.Equal(t, DefaultLaunchSettleDelay, cfg.Workers.LaunchSettleDelay)
	assert.Equal(t, DefaultFastPathBatchSize, cfg.Workers.FastPathBatchSize)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "missing cloud", mutate: func(c *StructuredConfig) { c.Adapter.CloudAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "missing bridge", mutate: func(c *StructuredConfig) { c.Adapter.DeviceBridgeAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "missing feed", mutate: func(c *StructuredConfig) { c.App.DefaultFeedURL = "" }, want: ErrInvalidAppConfigs},
		{
			name: "settle longer than timeout",
			mutate: func(c *StructuredConfig) {
				c.Workers.DeviceSyncTimeout = time.Second
				c.Workers.LaunchSettleDelay = 2 * time.Second
			},
			want: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validStructured()
			tt.mutate(raw)
			assert.ErrorIs(t, newClientConfig(raw).validate(), tt.want)
		})
	}
}
