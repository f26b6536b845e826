package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DisabledWhenUnset(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	cfg, err := NewJWTConfig()
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "a-secret-long-enough-to-pass")
	t.Setenv("AUTH_TOKEN_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "a-secret-long-enough-to-pass", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	t.Setenv("AUTH_SECRET", "a-secret-long-enough-to-pass")
	t.Setenv("AUTH_TOKEN_HOURS", "72")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfig_ShortSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "short")

	cfg, err := NewJWTConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "at least 16 characters")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("AUTH_SECRET", "a-secret-long-enough-to-pass")
	t.Setenv("AUTH_TOKEN_HOURS", "zero")

	cfg, err := NewJWTConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid AUTH_TOKEN_HOURS")
}
