// Package config provides admin credential configuration and password
// verification.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AdminConfig holds the single admin account used for login when
// authentication is enabled. The password is stored as a bcrypt hash, never in
// plain text.
type AdminConfig struct {
	Email        string
	PasswordHash string
	BcryptCost   int
}

// NewAdminConfig creates the admin account configuration from environment
// variables: ADMIN_EMAIL, ADMIN_PASSWORD_HASH and BCRYPT_COST (default: 12).
// Both email and hash must be set together; if neither is set it returns
// (nil, nil) and login is unavailable.
func NewAdminConfig() (*AdminConfig, error) {
	email := os.Getenv("ADMIN_EMAIL")
	hash := os.Getenv("ADMIN_PASSWORD_HASH")

	if email == "" && hash == "" {
		return nil, nil
	}
	if email == "" || hash == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH must both be set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &AdminConfig{
		Email:        email,
		PasswordHash: hash,
		BcryptCost:   cost,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *AdminConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt. Used by the hash-password CLI
// helper to produce a value for ADMIN_PASSWORD_HASH.
func (c *AdminConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify checks the given credentials against the configured admin account.
func (c *AdminConfig) Verify(email, password string) bool {
	if email != c.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}
