package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminForTest(t *testing.T, password string) *AdminConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &AdminConfig{
		Email:        "admin@example.org",
		PasswordHash: string(hash),
		BcryptCost:   12,
	}
}

func TestNewAdminConfig_DisabledWhenUnset(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg, err := NewAdminConfig()
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestNewAdminConfig_RequiresBothValues(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.org")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg, err := NewAdminConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "must both be set")
}

func TestNewAdminConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.org")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$12$fakehash")
	t.Setenv("BCRYPT_COST", "8")

	cfg, err := NewAdminConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "bcrypt cost out of range")
}

func TestVerify(t *testing.T) {
	cfg := adminForTest(t, "correct horse battery staple")

	assert.True(t, cfg.Verify("admin@example.org", "correct horse battery staple"))
	assert.False(t, cfg.Verify("admin@example.org", "wrong password"))
	assert.False(t, cfg.Verify("other@example.org", "correct horse battery staple"))
}

func TestHashPassword_RoundTrip(t *testing.T) {
	cfg := &AdminConfig{Email: "admin@example.org", BcryptCost: 10}

	hash, err := cfg.HashPassword("s3cret")
	require.NoError(t, err)

	cfg.PasswordHash = hash
	assert.True(t, cfg.Verify("admin@example.org", "s3cret"))
}
