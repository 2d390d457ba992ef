// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only values that can be
// wrong regardless of the defaults are checked here; completeness is
// checked on [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.SlowSyncVersion < 0 {
		return fmt.Errorf("%w: negative slow sync version", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	// sync state must survive restarts
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.WebSocketAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.MinSlowSyncInterval <= 0 ||
		cfg.Workers.RetryBaseDelay <= 0 ||
		cfg.Workers.RetryMaxDelay < cfg.Workers.RetryBaseDelay ||
		cfg.Workers.SlowSyncVersion < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SelfUserID == "" || cfg.App.SelfDomain == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
