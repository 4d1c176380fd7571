// ABOUTME: Backend connection configuration
// ABOUTME: Loads API base URL and token from config file, .env, and environment
package api

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the hosted backend.
	DefaultBaseURL = "https://api.beacon.2389.dev"

	configFileName = "api-config.json"
	appName        = "beacon"

	// EnvBaseURL and EnvToken override the config file when set.
	EnvBaseURL = "BEACON_API_URL"
	EnvToken   = "BEACON_API_TOKEN"
)

// Config holds backend connection settings.
type Config struct {
	BaseURL string `json:"base_url,omitempty"`
	Token   string `json:"token,omitempty"`
}

func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, configFileName), nil
}

// LoadConfig resolves the backend config: file first, then .env, then
// process environment. Missing or unreadable files fall back to defaults.
func LoadConfig() *Config {
	cfg := &Config{BaseURL: DefaultBaseURL}

	if path, err := configPath(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			// Invalid config degrades to defaults, same as the KV config.
			_ = json.Unmarshal(data, cfg)
		}
	}

	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
