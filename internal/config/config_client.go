package config

import (
	"fmt"
	"time"
)

// Defaults applied to tuning knobs left unset by every source.
const (
	DefaultRequestTimeout      = 15 * time.Second
	DefaultFetchBatchSize      = 50
	DefaultFetchCacheTTL       = 10 * time.Minute
	DefaultFetchRateLimit      = 5.0
	DefaultRetryAttempts       = 3
	DefaultReconcileInterval   = 5 * time.Minute
	DefaultDeviceSyncTimeout   = 15 * time.Second
	DefaultLaunchSettleDelay   = 500 * time.Millisecond
	DefaultFastPathBatchSize   = 1
	DefaultQueueCapacity       = 16
	DefaultDeviceFlushInterval = 2 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	DefaultFeedURL string
	UserToken      string
	Version        string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	CloudAddress        string
	DeviceBridgeAddress string
	RequestTimeout      time.Duration
	FetchBatchSize      int
	FetchCacheTTL       time.Duration
	FetchRateLimit      float64
	RetryAttempts       int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background processing and handshake settings.
type ClientWorkers struct {
	ReconcileInterval   time.Duration
	DeviceSyncTimeout   time.Duration
	LaunchSettleDelay   time.Duration
	FastPathBatchSize   int
	QueueCapacity       int
	DeviceFlushInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultFeedURL: cfg.App.DefaultFeedURL,
			UserToken:      cfg.App.UserToken,
			Version:        cfg.App.Version,
		},
		Adapter: ClientAdapter{
			CloudAddress:        cfg.Adapter.CloudAddress,
			DeviceBridgeAddress: cfg.Adapter.DeviceBridgeAddress,
			RequestTimeout:      cfg.Adapter.RequestTimeout,
			FetchBatchSize:      cfg.Adapter.FetchBatchSize,
			FetchCacheTTL:       cfg.Adapter.FetchCacheTTL,
			FetchRateLimit:      cfg.Adapter.FetchRateLimit,
			RetryAttempts:       cfg.Adapter.RetryAttempts,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ReconcileInterval:   cfg.Workers.ReconcileInterval,
			DeviceSyncTimeout:   cfg.Workers.DeviceSyncTimeout,
			LaunchSettleDelay:   cfg.Workers.LaunchSettleDelay,
			FastPathBatchSize:   cfg.Workers.FastPathBatchSize,
			QueueCapacity:       cfg.Workers.QueueCapacity,
			DeviceFlushInterval: cfg.Workers.DeviceFlushInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	a := &cfg.Adapter
	if a.RequestTimeout <= 0 {
		a.RequestTimeout = DefaultRequestTimeout
	}
	if a.FetchBatchSize <= 0 {
		a.FetchBatchSize = DefaultFetchBatchSize
	}
	if a.FetchCacheTTL <= 0 {
		a.FetchCacheTTL = DefaultFetchCacheTTL
	}
	if a.FetchRateLimit <= 0 {
		a.FetchRateLimit = DefaultFetchRateLimit
	}
	if a.RetryAttempts <= 0 {
		a.RetryAttempts = DefaultRetryAttempts
	}

	w := &cfg.Workers
	if w.ReconcileInterval <= 0 {
		w.ReconcileInterval = DefaultReconcileInterval
	}
	if w.DeviceSyncTimeout <= 0 {
		w.DeviceSyncTimeout = DefaultDeviceSyncTimeout
	}
	if w.LaunchSettleDelay <= 0 {
		w.LaunchSettleDelay = DefaultLaunchSettleDelay
	}
	if w.FastPathBatchSize <= 0 {
		w.FastPathBatchSize = DefaultFastPathBatchSize
	}
	if w.QueueCapacity <= 0 {
		w.QueueCapacity = DefaultQueueCapacity
	}
	if w.DeviceFlushInterval <= 0 {
		w.DeviceFlushInterval = DefaultDeviceFlushInterval
	}
}
