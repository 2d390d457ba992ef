package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SelfUserID string `json:"self_user_id"`
		SelfDomain string `json:"self_domain"`
		ClientID   string `json:"client_id"`
		LogDir     string `json:"log_dir"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress      string   `json:"http_address"`
		WebSocketAddress string   `json:"websocket_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		Token            string   `json:"token"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		MinSlowSyncInterval Duration `json:"min_slow_sync_interval"`
		RetryBaseDelay      Duration `json:"retry_base_delay"`
		RetryMaxDelay       Duration `json:"retry_max_delay"`
		SlowSyncVersion     int      `json:"slow_sync_version"`
	} `json:"workers,omitempty"`

	Diagnostics struct {
		Address string `json:"address"`
		Token   string `json:"token"`
	} `json:"diagnostics,omitempty"`
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
			SelfUserID: jsonCfg.App.SelfUserID,
			SelfDomain: jsonCfg.App.SelfDomain,
			ClientID:   jsonCfg.App.ClientID,
			LogDir:     jsonCfg.App.LogDir,
		},
		Adapter: Adapter{
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			WebSocketAddress: jsonCfg.Adapter.WebSocketAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:            jsonCfg.Adapter.Token,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			MinSlowSyncInterval: time.Duration(jsonCfg.Workers.MinSlowSyncInterval),
			RetryBaseDelay:      time.Duration(jsonCfg.Workers.RetryBaseDelay),
			RetryMaxDelay:       time.Duration(jsonCfg.Workers.RetryMaxDelay),
			SlowSyncVersion:     jsonCfg.Workers.SlowSyncVersion,
		},
		Diagnostics: Diagnostics{
			Address: jsonCfg.Diagnostics.Address,
			Token:   jsonCfg.Diagnostics.Token,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
