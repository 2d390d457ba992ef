package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetClientConfig to unset fields.
const (
	DefaultRequestTimeout      = 30 * time.Second
	DefaultMinSlowSyncInterval = 7 * 24 * time.Hour
	DefaultRetryBaseDelay      = time.Second
	DefaultRetryMaxDelay       = 10 * time.Minute
)

// ClientApp identifies the account and device.
type ClientApp struct {
	SelfUserID string
	SelfDomain string
	ClientID   string
	LogDir     string
}

// ClientAdapter holds the settings of the backend adapters.
type ClientAdapter struct {
	// HTTPAddress is the REST endpoint of the backend.
	HTTPAddress string
	// WebSocketAddress is the endpoint of the live event stream.
	WebSocketAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the initial bearer token.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains sync supervisor settings.
type ClientWorkers struct {
	MinSlowSyncInterval time.Duration
	RetryBaseDelay      time.Duration
	RetryMaxDelay       time.Duration
	// SlowSyncVersion is zero when the built-in version is used.
	SlowSyncVersion int
}

// ClientDiagnostics configures the diagnostics server.
type ClientDiagnostics struct {
	Address string
	Token   string
}

// ClientConfig is the configuration the client runs with.
type ClientConfig struct {
	App         ClientApp
	Adapter     ClientAdapter
	Storage     ClientStorage
	Workers     ClientWorkers
	Diagnostics ClientDiagnostics
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SelfUserID: cfg.App.SelfUserID,
			SelfDomain: cfg.App.SelfDomain,
			ClientID:   cfg.App.ClientID,
			LogDir:     cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			WebSocketAddress: cfg.Adapter.WebSocketAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			Token:            cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			MinSlowSyncInterval: cfg.Workers.MinSlowSyncInterval,
			RetryBaseDelay:      cfg.Workers.RetryBaseDelay,
			RetryMaxDelay:       cfg.Workers.RetryMaxDelay,
			SlowSyncVersion:     cfg.Workers.SlowSyncVersion,
		},
		Diagnostics: ClientDiagnostics{
			Address: cfg.Diagnostics.Address,
			Token:   cfg.Diagnostics.Token,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.MinSlowSyncInterval == 0 {
		clientCfg.Workers.MinSlowSyncInterval = DefaultMinSlowSyncInterval
	}
	if clientCfg.Workers.RetryBaseDelay == 0 {
		clientCfg.Workers.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if clientCfg.Workers.RetryMaxDelay == 0 {
		clientCfg.Workers.RetryMaxDelay = DefaultRetryMaxDelay
	}

	return clientCfg
}
