// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment variables,
// or CLI flags.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	SessionTTL string `json:"session_ttl,omitempty"` // Idle session eviction window, e.g. "2h"

	// Completion backend
	APIKey  string `json:"api_key,omitempty"`  // Completion API key
	BaseURL string `json:"base_url,omitempty"` // Chat-completions endpoint base URL
	Model   string `json:"model,omitempty"`    // Model identifier

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. Config file values win over defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SessionTTL == "" {
		result.SessionTTL = defaults.SessionTTL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// FromEnv builds a Config from CVBUILDER_* environment variables.
// Empty variables leave the corresponding field zero-valued.
func FromEnv() Config {
	return Config{
		APIKey:  os.Getenv("CVBUILDER_API_KEY"),
		BaseURL: os.Getenv("CVBUILDER_BASE_URL"),
		Model:   os.Getenv("CVBUILDER_MODEL"),
	}
}
