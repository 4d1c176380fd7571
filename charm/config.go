// ABOUTME: Connection settings for the KV backend that holds wizard drafts
// ABOUTME: Loads from disk with defaults on any missing or unreadable config

package charm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultCharmHost is the self-hosted 2389 research server.
	DefaultCharmHost = "charm.2389.dev"

	// AppName namespaces the KV database and the local config dir.
	AppName = "beacon"

	configFileName = "charm-config.json"
)

// Config holds KV connection settings. AutoSync pushes every draft write to
// the server immediately, so a half-finished wizard follows the account
// across machines.
type Config struct {
	Host     string `json:"host,omitempty"`
	AutoSync bool   `json:"auto_sync"`
}

// DefaultConfig returns the out-of-the-box settings.
func DefaultConfig() *Config {
	return &Config{
		Host:     DefaultCharmHost,
		AutoSync: true,
	}
}

func configFilePath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, configFileName), nil
}

// LoadConfig reads the config file. A missing or unreadable file degrades to
// defaults rather than an error, matching how the session store treats its
// own unreadable data.
func LoadConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	if cfg.Host == "" {
		cfg.Host = DefaultCharmHost
	}
	return &cfg, nil
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
