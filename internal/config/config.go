// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration of the sync client as read from
// one source. The builder merges one StructuredConfig per source into the
// final value, which GetClientConfig then turns into a [ClientConfig].
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App identifies the logged in account and device.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend endpoints and the access token.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers tunes the slow sync and incremental sync supervisors.
	Workers Workers `envPrefix:"WORKERS_"`

	// Diagnostics configures the local diagnostics HTTP server.
	Diagnostics Diagnostics `envPrefix:"DIAGNOSTICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App identifies the account and the device the client runs as.
type App struct {
	// SelfUserID is the id part of the qualified id of the self user.
	// Env: APP_SELF_USER_ID
	SelfUserID string `env:"SELF_USER_ID"`

	// SelfDomain is the backend domain of the self user.
	// Env: APP_SELF_DOMAIN
	SelfDomain string `env:"SELF_DOMAIN"`

	// ClientID is the registered device id. Empty until the device is
	// registered; sync does not start without it.
	// Env: APP_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// LogDir is the directory of the "logs" file.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Adapter holds the backend endpoints.
type Adapter struct {
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// WebSocketAddress is the base address of the live event stream.
	// Env: ADAPTER_WEBSOCKET_ADDRESS
	WebSocketAddress string `env:"WEBSOCKET_ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer access token.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups the local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite data source, e.g. "file:sync.db?_foreign_keys=on".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers tunes the sync supervisors.
type Workers struct {
	// MinSlowSyncInterval is how long a completed slow sync stays valid.
	// Env: WORKERS_MIN_SLOW_SYNC_INTERVAL
	MinSlowSyncInterval time.Duration `env:"MIN_SLOW_SYNC_INTERVAL"`

	// RetryBaseDelay and RetryMaxDelay bound the exponential retry delay
	// of failed sync runs.
	// Env: WORKERS_RETRY_BASE_DELAY, WORKERS_RETRY_MAX_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
	RetryMaxDelay  time.Duration `env:"RETRY_MAX_DELAY"`

	// SlowSyncVersion overrides the built-in slow sync version. A stored
	// version lower than this forces a slow sync.
	// Env: WORKERS_SLOW_SYNC_VERSION
	SlowSyncVersion int `env:"SLOW_SYNC_VERSION"`
}

// Diagnostics configures the local diagnostics server.
type Diagnostics struct {
	// Address is the "host:port" the server listens on. Empty disables it.
	// Env: DIAGNOSTICS_ADDRESS
	Address string `env:"ADDRESS"`

	// Token, when set, is required as a bearer token on /api routes.
	// Env: DIAGNOSTICS_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads and merges the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
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
