package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a checked-in config file.
type StructuredJSONConfig struct {
	App struct {
		Version         string   `json:"version"`
		SessionDuration Duration `json:"session_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN        string `json:"dsn"`
		SQLitePath string `json:"sqlite_path"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Platform struct {
		CloudflareAccountID string `json:"cloudflare_account_id"`
		CloudflareAPIToken  string `json:"cloudflare_api_token"`
		VercelToken         string `json:"vercel_token"`
		VercelTeamID        string `json:"vercel_team_id"`
	} `json:"platform,omitempty"`
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
			Version:         jsonCfg.App.Version,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
		},
		Storage: Storage{
			DSN:        jsonCfg.Storage.DSN,
			SQLitePath: jsonCfg.Storage.SQLitePath,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Platform: Platform{
			CloudflareAccountID: jsonCfg.Platform.CloudflareAccountID,
			CloudflareAPIToken:  jsonCfg.Platform.CloudflareAPIToken,
			VercelToken:         jsonCfg.Platform.VercelToken,
			VercelTeamID:        jsonCfg.Platform.VercelTeamID,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
		return fmt.Errorf("invalid duration: %v", v)
	}
}
