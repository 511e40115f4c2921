package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat hearth configuration: who you are and which
// space you work in.
type Config struct {
	Version string `json:"version"`
	UserID  string `json:"user_id"`  // USER-XXX, the acting user for every command
	SpaceID string `json:"space_id"` // SPACE-XXX
}

// LoadConfig reads .hearth/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".hearth", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Load resolves the config from the current directory, falling back to the
// home directory where `hearth init` writes it.
func Load() (*Config, error) {
	if cfg, err := LoadConfig("."); err == nil {
		return cfg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadConfig(home)
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	hearthDir := filepath.Join(dir, ".hearth")
	if err := os.MkdirAll(hearthDir, 0755); err != nil {
		return fmt.Errorf("failed to create .hearth dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(hearthDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
