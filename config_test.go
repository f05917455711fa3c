package jws

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 0, config.MaxTokenSize)
	assert.Equal(t, 0, config.MinKeyLength)
	assert.False(t, config.RejectWeakKeys)
	assert.Nil(t, config.Logger)
	assert.NoError(t, config.Validate())
	assert.Equal(t, Config{}, config)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{"zero", Config{}, false},
		{"strict", Config{MaxTokenSize: 4096, MinKeyLength: 32, RejectWeakKeys: true}, false},
		{"negative max token size", Config{MaxTokenSize: -1}, true},
		{"negative min key length", Config{MinKeyLength: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	var nilConfig *Config
	assert.ErrorIs(t, nilConfig.Validate(), ErrInvalidConfig)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"JWS_MAX_TOKEN_SIZE", "JWS_MIN_KEY_LENGTH", "JWS_REJECT_WEAK_KEYS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("JWS_MAX_TOKEN_SIZE", "8192")
	t.Setenv("JWS_MIN_KEY_LENGTH", "32")
	t.Setenv("JWS_REJECT_WEAK_KEYS", "true")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8192, config.MaxTokenSize)
	assert.Equal(t, 32, config.MinKeyLength)
	assert.True(t, config.RejectWeakKeys)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric size", "JWS_MAX_TOKEN_SIZE", "big"},
		{"negative size", "JWS_MAX_TOKEN_SIZE", "-1"},
		{"negative key length", "JWS_MIN_KEY_LENGTH", "-32"},
		{"non-boolean", "JWS_REJECT_WEAK_KEYS", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
