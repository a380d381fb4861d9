package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogPath string `json:"log_path"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Provider struct {
		RequestTimeout Duration `json:"request_timeout"`
		Login          string   `json:"login"`
		Password       string   `json:"password"`
	} `json:"provider,omitempty"`

	Sync struct {
		Interval        Duration `json:"interval"`
		Workers         int      `json:"workers"`
		MaxRetries      int      `json:"max_retries"`
		BackoffBase     Duration `json:"backoff_base"`
		BackoffCap      Duration `json:"backoff_cap"`
		ResetDelay      Duration `json:"reset_delay"`
		Strategy        string   `json:"strategy"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"sync,omitempty"`

	Admin struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"admin,omitempty"`

	Vaults []Vault `json:"vaults,omitempty"`
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
			LogPath: jsonCfg.App.LogPath,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Provider: Provider{
			RequestTimeout: time.Duration(jsonCfg.Provider.RequestTimeout),
			Login:          jsonCfg.Provider.Login,
			Password:       jsonCfg.Provider.Password,
		},
		Sync: Sync{
			Interval:        time.Duration(jsonCfg.Sync.Interval),
			Workers:         jsonCfg.Sync.Workers,
			MaxRetries:      jsonCfg.Sync.MaxRetries,
			BackoffBase:     time.Duration(jsonCfg.Sync.BackoffBase),
			BackoffCap:      time.Duration(jsonCfg.Sync.BackoffCap),
			ResetDelay:      time.Duration(jsonCfg.Sync.ResetDelay),
			Strategy:        jsonCfg.Sync.Strategy,
			CleanupInterval: time.Duration(jsonCfg.Sync.CleanupInterval),
		},
		Admin: Admin{
			Address:        jsonCfg.Admin.Address,
			RequestTimeout: time.Duration(jsonCfg.Admin.RequestTimeout),
		},
		Vaults:       jsonCfg.Vaults,
		JSONFilePath: "",
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
