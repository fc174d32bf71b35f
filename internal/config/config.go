package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all mailsort configuration.
type Config struct {
	Store StoreConfig `toml:"store"`
	Rules RulesConfig `toml:"rules"`
	UI    UIConfig    `toml:"ui"`
}

// StoreConfig selects and locates the persistence backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // "json" or "sqlite"
	Path    string `toml:"path"`    // defaults to DataDir()/emails.json or mailsort.db
}

// RulesConfig locates the classification rule tables.
type RulesConfig struct {
	Path string `toml:"path"` // empty means the built-in defaults
}

// UIConfig holds display settings.
type UIConfig struct {
	ShowAlerts bool `toml:"show_alerts"`
}

func defaults() Config {
	return Config{
		Store: StoreConfig{
			Backend: "json",
		},
		UI: UIConfig{
			ShowAlerts: true,
		},
	}
}

// Load reads config from path. If path is empty, returns defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// StorePath returns the configured store path, or the backend's
// default location under DataDir.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	if c.Store.Backend == "sqlite" {
		return filepath.Join(DataDir(), "mailsort.db")
	}
	return filepath.Join(DataDir(), "emails.json")
}

// ConfigDir returns the mailsort config directory path.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mailsort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mailsort")
}

// DataDir returns the mailsort data directory path.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mailsort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "mailsort")
}
