package jws

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config represents codec configuration. The zero Config is valid and
// equals DefaultConfig.
type Config struct {
	// MaxTokenSize rejects longer tokens before any work is done (0 = no limit)
	MaxTokenSize int `yaml:"max_token_size" json:"max_token_size"`

	// MinKeyLength is the shortest secret key Encode and Decode accept
	MinKeyLength int `yaml:"min_key_length" json:"min_key_length"`

	// RejectWeakKeys refuses keys with obvious low-entropy patterns
	RejectWeakKeys bool `yaml:"reject_weak_keys" json:"reject_weak_keys"`

	// Logger receives debug records about rejected tokens (nil = discard)
	Logger *slog.Logger `yaml:"-" json:"-"`
}

// DefaultConfig returns a configuration that accepts any key and any token
// size.
func DefaultConfig() Config {
	return Config{
		MaxTokenSize:   0,
		MinKeyLength:   0,
		RejectWeakKeys: false,
	}
}

// envConfig holds the Config fields that can come from the environment.
type envConfig struct {
	MaxTokenSize   int  `env:"JWS_MAX_TOKEN_SIZE" envDefault:"0"`
	MinKeyLength   int  `env:"JWS_MIN_KEY_LENGTH" envDefault:"0"`
	RejectWeakKeys bool `env:"JWS_REJECT_WEAK_KEYS" envDefault:"false"`
}

// LoadConfig reads a Config from JWS_* environment variables. The codec
// never reads the environment on its own.
func LoadConfig() (Config, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Config{
		MaxTokenSize:   e.MaxTokenSize,
		MinKeyLength:   e.MinKeyLength,
		RejectWeakKeys: e.RejectWeakKeys,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}

	if c.MaxTokenSize < 0 {
		return fmt.Errorf("%w: max token size must not be negative", ErrInvalidConfig)
	}

	if c.MinKeyLength < 0 {
		return fmt.Errorf("%w: min key length must not be negative", ErrInvalidConfig)
	}

	return nil
}
