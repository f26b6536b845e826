// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from environment variables. It
// reads AUTH_SECRET and AUTH_TOKEN_HOURS (default: 24). When AUTH_SECRET is
// not set it returns (nil, nil): the server then runs without authentication,
// which is the expected mode for a single-user local deployment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		return nil, nil
	}

	expirationStr := os.Getenv("AUTH_TOKEN_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_TOKEN_HOURS: %v", err)
	}

	config := &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("AUTH_SECRET must be at least 16 characters")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("AUTH_TOKEN_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
