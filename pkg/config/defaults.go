// Package config loads the site and content store configuration from the
// environment, with optional overrides from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the web service configuration.
type Config struct {
	// Server Configuration
	Port               string        `env:"PORT" envDefault:"8080"`
	GinMode            string        `env:"GIN_MODE" envDefault:"release"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ServerIdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	AllowedOrigins     []string      `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Content API
	ContentAPIURL      string        `env:"CONTENT_API_URL" envDefault:"http://localhost:8090"`
	ContentAPIToken    string        `env:"CONTENT_API_TOKEN"`
	ContentLoadTimeout time.Duration `env:"CONTENT_LOAD_TIMEOUT" envDefault:"15s"`

	// Admin
	AdminPassword          string        `env:"ADMIN_PASSWORD"`
	AdminSessionTTL        time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"2h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	NoticeTTL              time.Duration `env:"NOTICE_TTL" envDefault:"3s"`

	// Email
	ResendAPIKey     string `env:"RESEND_API_KEY"`
	ContactEmailTo   string `env:"CONTACT_EMAIL_TO"`
	ContactEmailFrom string `env:"CONTACT_EMAIL_FROM" envDefault:"Model House <onboarding@resend.dev>"`

	Logging LoggingConfig
}

// LoggingConfig controls the channeled logger. ChannelLevels overrides Level
// per channel, e.g. LOG_CHANNEL_LEVELS=admin:debug,remote:warn.
type LoggingConfig struct {
	Dir           string            `env:"LOG_DIR" envDefault:"logs"`
	ToFile        bool              `env:"LOG_TO_FILE" envDefault:"false"`
	JSON          bool              `env:"LOG_JSON" envDefault:"true"`
	Level         string            `env:"LOG_LEVEL" envDefault:"info"`
	ChannelLevels map[string]string `env:"LOG_CHANNEL_LEVELS"`
}

// StoreConfig is the content store service configuration.
type StoreConfig struct {
	Port      string `env:"STORE_PORT" envDefault:"8090"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	DBDriver  string `env:"STORE_DB_DRIVER" envDefault:"sqlite3"`
	DBDSN     string `env:"STORE_DB_DSN" envDefault:"file:content.db"`
	AuthToken string `env:"STORE_AUTH_TOKEN"`
	SeedFile  string `env:"STORE_SEED_FILE"`

	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ServerIdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`

	Logging LoggingConfig
}

// LoadDotEnv applies overrides from a .env file in the working directory.
// Variables already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to read .env file", "error", err)
		}
		return
	}
	slog.Info("Loaded configuration overrides from .env file")
}

// ParseEnv loads target from environment variables and logs every value
// that came from the environment rather than its default. Secrets are
// redacted.
func ParseEnv(target any) error {
	opts := env.Options{
		OnSet: func(tag string, value any, isDefault bool) {
			if isDefault {
				return
			}
			slog.Info("Config override", "key", tag, "value", redact(tag, value))
		},
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func redact(tag string, value any) any {
	for _, marker := range []string{"PASSWORD", "TOKEN", "API_KEY"} {
		if strings.Contains(tag, marker) {
			return "[redacted]"
		}
	}
	return value
}

// Load reads and validates the web service configuration.
func Load() (*Config, error) {
	LoadDotEnv()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed as env tags.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ContentAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid CONTENT_API_URL %q", c.ContentAPIURL)
	}
	if c.ContentLoadTimeout <= 0 {
		return fmt.Errorf("CONTENT_LOAD_TIMEOUT must be positive, got %s", c.ContentLoadTimeout)
	}
	if c.AdminSessionTTL <= 0 {
		return fmt.Errorf("ADMIN_SESSION_TTL must be positive, got %s", c.AdminSessionTTL)
	}
	if c.SessionCleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive, got %s", c.SessionCleanupInterval)
	}
	c.ContentAPIURL = strings.TrimRight(c.ContentAPIURL, "/")
	return nil
}

// EmailEnabled reports whether contact inquiries can be delivered.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.ContactEmailTo != ""
}

// LoadStore reads and validates the content store configuration.
func LoadStore() (*StoreConfig, error) {
	LoadDotEnv()

	cfg := &StoreConfig{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	switch cfg.DBDriver {
	case "sqlite3", "libsql":
	default:
		return nil, fmt.Errorf("unsupported STORE_DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBDSN == "" {
		return nil, errors.New("STORE_DB_DSN is required")
	}
	return cfg, nil
}
