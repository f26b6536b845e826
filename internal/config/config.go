// Package config provides configuration loading and validation for the server
// and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents the application configuration. Values come from
// environment variables, optionally seeded from a JSON file. All fields are
// optional; missing values use defaults.
type Config struct {
	Port         int    `json:"port,omitempty"`          // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	AllowOrigin  string `json:"allow_origin,omitempty"`  // CORS Access-Control-Allow-Origin value
	FetchTimeout int    `json:"fetch_timeout,omitempty"` // page fetch timeout in seconds
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Port:         3000,
		FetchTimeout: 30,
	}
}

// FromEnv builds a Config from environment variables: PORT, DATABASE_URL,
// ALLOW_ORIGIN and FETCH_TIMEOUT_SECONDS. Unset variables leave the field at
// its zero value so file or default values apply.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AllowOrigin: os.Getenv("ALLOW_ORIGIN"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if timeoutStr := os.Getenv("FETCH_TIMEOUT_SECONDS"); timeoutStr != "" {
		timeout, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS: %v", err)
		}
		cfg.FetchTimeout = timeout
	}

	return cfg, nil
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*Config, error) {
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

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Environment values win over file values, which win over built-in
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.AllowOrigin == "" {
		result.AllowOrigin = defaults.AllowOrigin
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.FetchTimeout < 1 {
		return fmt.Errorf("config error: 'fetch_timeout' must be positive")
	}
	return nil
}

// FetchTimeoutDuration returns the page fetch timeout as a time.Duration.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}
