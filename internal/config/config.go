// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the default feed and the
	// signed-in user's token.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds addresses and tuning for outbound collaborators: the
	// cloud locker, the store sources, and the device bridge.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background loops and the device
	// sync handshake.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultFeedURL is the URL of the distinguished catch-all store source.
	// Apps resolved only there are adopted into the cloud locker.
	// Env: APP_DEFAULT_FEED_URL
	DefaultFeedURL string `env:"DEFAULT_FEED_URL"`

	// UserToken is the signed-in user's bearer token (JWT). Its subject is
	// the user id. When empty no user is signed in and reconciliation is a no-op.
	// Env: APP_USER_TOKEN
	UserToken string `env:"USER_TOKEN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source (file path or file: URI).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	// CloudAddress is the base URL of the cloud locker API.
	// Env: ADAPTER_CLOUD_ADDRESS
	CloudAddress string `env:"CLOUD_ADDRESS"`

	// DeviceBridgeAddress is the base URL of the bridge daemon that owns
	// the wireless link to the wearable.
	// Env: ADAPTER_DEVICE_BRIDGE_ADDRESS
	DeviceBridgeAddress string `env:"DEVICE_BRIDGE_ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FetchBatchSize is the number of locker uuids resolved per store request.
	// Env: ADAPTER_FETCH_BATCH_SIZE
	FetchBatchSize int `env:"FETCH_BATCH_SIZE"`

	// FetchCacheTTL is how long resolved app metadata is reused when a
	// fetch allows the cache.
	// Env: ADAPTER_FETCH_CACHE_TTL
	FetchCacheTTL time.Duration `env:"FETCH_CACHE_TTL"`

	// FetchRateLimit caps requests per second against a single store source.
	// Env: ADAPTER_FETCH_RATE_LIMIT
	FetchRateLimit float64 `env:"FETCH_RATE_LIMIT"`

	// RetryAttempts is how many times user-initiated cloud writes are tried
	// when the cloud reports itself unavailable.
	// Env: ADAPTER_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`
}

// Workers holds configuration for background processing.
type Workers struct {
	// ReconcileInterval is how often a full reconciliation pass is queued
	// in addition to the passes triggered by cloud changes.
	// Env: WORKERS_RECONCILE_INTERVAL
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL"`

	// DeviceSyncTimeout bounds the wait for a newly pushed app to appear on
	// the device before launching it.
	// Env: WORKERS_DEVICE_SYNC_TIMEOUT
	DeviceSyncTimeout time.Duration `env:"DEVICE_SYNC_TIMEOUT"`

	// LaunchSettleDelay is the pause between a confirmed device sync and the
	// launch request.
	// Env: WORKERS_LAUNCH_SETTLE_DELAY
	LaunchSettleDelay time.Duration `env:"LAUNCH_SETTLE_DELAY"`

	// FastPathBatchSize is the number of newly resolved apps in one cloud
	// change batch that triggers wait-and-launch.
	// Env: WORKERS_FAST_PATH_BATCH_SIZE
	FastPathBatchSize int `env:"FAST_PATH_BATCH_SIZE"`

	// QueueCapacity bounds the cloud change work queue.
	// Env: WORKERS_QUEUE_CAPACITY
	QueueCapacity int `env:"QUEUE_CAPACITY"`

	// DeviceFlushInterval is how often pending device locker rows are
	// retried toward the device.
	// Env: WORKERS_DEVICE_FLUSH_INTERVAL
	DeviceFlushInterval time.Duration `env:"DEVICE_FLUSH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
