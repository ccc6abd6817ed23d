package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		DefaultFeedURL string `json:"default_feed_url"`
		UserToken      string `json:"user_token"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		CloudAddress        string   `json:"cloud_address"`
		DeviceBridgeAddress string   `json:"device_bridge_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		FetchBatchSize      int      `json:"fetch_batch_size"`
		FetchCacheTTL       Duration `json:"fetch_cache_ttl"`
		FetchRateLimit      float64  `json:"fetch_rate_limit"`
		RetryAttempts       int      `json:"retry_attempts"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReconcileInterval   Duration `json:"reconcile_interval"`
		DeviceSyncTimeout   Duration `json:"device_sync_timeout"`
		LaunchSettleDelay   Duration `json:"launch_settle_delay"`
		FastPathBatchSize   int      `json:"fast_path_batch_size"`
		QueueCapacity       int      `json:"queue_capacity"`
		DeviceFlushInterval Duration `json:"device_flush_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultFeedURL: jsonCfg.App.DefaultFeedURL,
			UserToken:      jsonCfg.App.UserToken,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			CloudAddress:        jsonCfg.Adapter.CloudAddress,
			DeviceBridgeAddress: jsonCfg.Adapter.DeviceBridgeAddress,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			FetchBatchSize:      jsonCfg.Adapter.FetchBatchSize,
			FetchCacheTTL:       time.Duration(jsonCfg.Adapter.FetchCacheTTL),
			FetchRateLimit:      jsonCfg.Adapter.FetchRateLimit,
			RetryAttempts:       jsonCfg.Adapter.RetryAttempts,
		},
		Workers: Workers{
			ReconcileInterval:   time.Duration(jsonCfg.Workers.ReconcileInterval),
			DeviceSyncTimeout:   time.Duration(jsonCfg.Workers.DeviceSyncTimeout),
			LaunchSettleDelay:   time.Duration(jsonCfg.Workers.LaunchSettleDelay),
			FastPathBatchSize:   jsonCfg.Workers.FastPathBatchSize,
			QueueCapacity:       jsonCfg.Workers.QueueCapacity,
			DeviceFlushInterval: time.Duration(jsonCfg.Workers.DeviceFlushInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
