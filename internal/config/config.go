// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
)

// Catalog cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Log output formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every setting the server reads from its environment
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	DnD5eAPIBaseURL  string        `env:"DND5E_API_BASE_URL"`
	DnD5eHTTPTimeout time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"30s"`

	CatalogCacheTTL     time.Duration `env:"CATALOG_CACHE_TTL"     envDefault:"24h"`
	CatalogCacheBackend string        `env:"CATALOG_CACHE_BACKEND" envDefault:"memory"`
	RedisURL            string        `env:"REDIS_URL"`

	SessionTTL           time.Duration `env:"SESSION_TTL"            envDefault:"2h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	CatalogLoadTimeout   time.Duration `env:"CATALOG_LOAD_TIMEOUT"   envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env files (when present) and then the environment. Variables
// already set in the environment win over .env entries.
func Load(files ...string) (*Config, error) {
	if err := loadDotEnv(files...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load .env")
	}
	return nil
}

// Validate checks ranges and enumerations and normalizes string settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port < 1 || c.Port > 65535 {
		vb.InvalidField("PORT", "must be between 1 and 65535")
	}
	if c.DnD5eHTTPTimeout < 0 {
		vb.InvalidField("DND5E_HTTP_TIMEOUT", "cannot be negative")
	}
	if c.CatalogCacheTTL < 0 {
		vb.InvalidField("CATALOG_CACHE_TTL", "cannot be negative")
	}
	if c.SessionTTL <= 0 {
		vb.InvalidField("SESSION_TTL", "must be positive")
	}
	if c.SessionSweepInterval <= 0 {
		vb.InvalidField("SESSION_SWEEP_INTERVAL", "must be positive")
	}
	if c.CatalogLoadTimeout <= 0 {
		vb.InvalidField("CATALOG_LOAD_TIMEOUT", "must be positive")
	}

	c.CatalogCacheBackend = strings.ToLower(strings.TrimSpace(c.CatalogCacheBackend))
	switch c.CatalogCacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.RedisURL == "" {
			vb.InvalidField("REDIS_URL", "is required when CATALOG_CACHE_BACKEND is redis")
		}
	default:
		vb.InvalidField("CATALOG_CACHE_BACKEND", "must be memory or redis")
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("LOG_LEVEL", "must be debug, info, warn or error")
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		vb.InvalidField("LOG_FORMAT", "must be text or json")
	}

	return vb.Build()
}

// ParseLogLevel maps a level name onto slog's levels
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", name)
	}
	return level, nil
}
