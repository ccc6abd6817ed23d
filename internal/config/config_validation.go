// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Requirements are enforced on
// the client view; the raw merge only rejects malformed URLs.
func (cfg *StructuredConfig) validate() error {
	for name, raw := range map[string]string{
		"cloud address":         cfg.Adapter.CloudAddress,
		"device bridge address": cfg.Adapter.DeviceBridgeAddress,
		"default feed url":      cfg.App.DefaultFeedURL,
	} {
		if raw == "" {
			continue
		}
		if err := validateURL(raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.CloudAddress == "" || cfg.Adapter.DeviceBridgeAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.DefaultFeedURL == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.LaunchSettleDelay >= cfg.Workers.DeviceSyncTimeout {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}
	return nil
}
