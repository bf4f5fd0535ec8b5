package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all engine configuration.
type Config struct {
	App     AppConfig
	Chat    ChatConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Env string
}

// ChatConfig holds chat assistant tuning.
type ChatConfig struct {
	// ReplyDelay is the simulated latency between a user message and the
	// assistant reply.
	ReplyDelay time.Duration
	// MaxMessageLen caps the length of a single user message.
	MaxMessageLen int
}

// AuthConfig holds identity-provider call settings.
type AuthConfig struct {
	// Timeout bounds every call to the external identity provider.
	Timeout time.Duration
}

// CatalogConfig holds property catalog settings.
type CatalogConfig struct {
	// SeedFile is an optional YAML fixture to load instead of the built-in
	// seed data. Empty means use the built-in seed.
	SeedFile string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present, then viper reads values and
// provides sensible defaults for development.
func Load() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults for development
	v.SetDefault("ENV", "development")
	v.SetDefault("CHAT_REPLY_DELAY", "1s")
	v.SetDefault("CHAT_MAX_MESSAGE_LEN", 500)
	v.SetDefault("AUTH_TIMEOUT", "10s")
	v.SetDefault("CATALOG_SEED_FILE", "")

	// Bind environment variables
	v.AutomaticEnv()

	// Build configuration
	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("ENV"),
		},
		Chat: ChatConfig{
			ReplyDelay:    v.GetDuration("CHAT_REPLY_DELAY"),
			MaxMessageLen: v.GetInt("CHAT_MAX_MESSAGE_LEN"),
		},
		Auth: AuthConfig{
			Timeout: v.GetDuration("AUTH_TIMEOUT"),
		},
		Catalog: CatalogConfig{
			SeedFile: v.GetString("CATALOG_SEED_FILE"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.App.Env == "" {
		return fmt.Errorf("ENV is required")
	}

	if c.Chat.ReplyDelay < 0 {
		return fmt.Errorf("CHAT_REPLY_DELAY must be non-negative")
	}
	if c.Chat.MaxMessageLen < 1 {
		return fmt.Errorf("CHAT_MAX_MESSAGE_LEN must be at least 1")
	}

	if c.Auth.Timeout < time.Second {
		return fmt.Errorf("AUTH_TIMEOUT must be at least 1s")
	}

	return nil
}
