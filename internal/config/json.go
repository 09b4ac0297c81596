package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type for timeout fields.
type StructuredJSONConfig struct {
	App struct {
		APIKey        string `json:"api_key"`
		ClientID      string `json:"client_id"`
		ClientVersion string `json:"client_version"`
	} `json:"app,omitempty"`

	Adapter struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		MaxDiffEntries     int `json:"max_diff_entries"`
		MaxDatabaseEntries int `json:"max_database_entries"`
	} `json:"sync,omitempty"`

	Retry struct {
		SyncAttempts    uint64   `json:"sync_attempts"`
		SyncDelay       Duration `json:"sync_delay"`
		VerifyAttempts  uint64   `json:"verify_attempts"`
		VerifyBaseDelay Duration `json:"verify_base_delay"`
		VerifyMaxDelay  Duration `json:"verify_max_delay"`
	} `json:"retry,omitempty"`
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
			APIKey:        jsonCfg.App.APIKey,
			ClientID:      jsonCfg.App.ClientID,
			ClientVersion: jsonCfg.App.ClientVersion,
		},
		Adapter: Adapter{
			Address:        jsonCfg.Adapter.Address,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			MaxDiffEntries:     jsonCfg.Sync.MaxDiffEntries,
			MaxDatabaseEntries: jsonCfg.Sync.MaxDatabaseEntries,
		},
		Retry: Retry{
			SyncAttempts:    jsonCfg.Retry.SyncAttempts,
			SyncDelay:       time.Duration(jsonCfg.Retry.SyncDelay),
			VerifyAttempts:  jsonCfg.Retry.VerifyAttempts,
			VerifyBaseDelay: time.Duration(jsonCfg.Retry.VerifyBaseDelay),
			VerifyMaxDelay:  time.Duration(jsonCfg.Retry.VerifyMaxDelay),
		},
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
