package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat deskflow configuration. It pins the analyst
// identity and the portfolio most commands default to.
type Config struct {
	Version     string `json:"version"`
	AnalystID   string `json:"analyst_id"`
	PortfolioID string `json:"portfolio_id,omitempty"` // PF-XXX default for commands
}

// LoadConfig reads .deskflow/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".deskflow", "config.json")
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

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	deskflowDir := filepath.Join(dir, ".deskflow")
	if err := os.MkdirAll(deskflowDir, 0755); err != nil {
		return fmt.Errorf("failed to create .deskflow dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(deskflowDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
