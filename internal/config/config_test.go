package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/config"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, name := range []string{
		"PORT", "DND5E_API_BASE_URL", "DND5E_HTTP_TIMEOUT", "CATALOG_CACHE_TTL",
		"CATALOG_CACHE_BACKEND", "REDIS_URL", "SESSION_TTL", "SESSION_SWEEP_INTERVAL",
		"CATALOG_LOAD_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		// Setenv registers the restore; Unsetenv then clears it for the test
		s.T().Setenv(name, "")
		s.Require().NoError(os.Unsetenv(name))
	}
}

func (s *ConfigTestSuite) missingFile() string {
	return filepath.Join(s.dir, "absent.env")
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(s.missingFile())
	s.Require().NoError(err)

	s.Equal(8080, cfg.Port)
	s.Empty(cfg.DnD5eAPIBaseURL)
	s.Equal(30*time.Second, cfg.DnD5eHTTPTimeout)
	s.Equal(24*time.Hour, cfg.CatalogCacheTTL)
	s.Equal(config.CacheBackendMemory, cfg.CatalogCacheBackend)
	s.Equal(2*time.Hour, cfg.SessionTTL)
	s.Equal(5*time.Minute, cfg.SessionSweepInterval)
	s.Equal("info", cfg.LogLevel)
	s.Equal(config.LogFormatText, cfg.LogFormat)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("PORT", "9090")
	s.T().Setenv("CATALOG_CACHE_BACKEND", "Redis")
	s.T().Setenv("REDIS_URL", "redis://localhost:6379/0")
	s.T().Setenv("SESSION_TTL", "30m")
	s.T().Setenv("LOG_FORMAT", "JSON")

	cfg, err := config.Load(s.missingFile())
	s.Require().NoError(err)

	s.Equal(9090, cfg.Port)
	s.Equal(config.CacheBackendRedis, cfg.CatalogCacheBackend)
	s.Equal("redis://localhost:6379/0", cfg.RedisURL)
	s.Equal(30*time.Minute, cfg.SessionTTL)
	s.Equal(config.LogFormatJSON, cfg.LogFormat)
}

func (s *ConfigTestSuite) TestDotEnvFile() {
	path := filepath.Join(s.dir, ".env")
	s.Require().NoError(os.WriteFile(path, []byte("PORT=7070\nDND5E_API_BASE_URL=http://localhost:3000/api/\n"), 0o600))
	s.T().Setenv("PORT", "6060")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(6060, cfg.Port, "the environment wins over .env")
	s.Equal("http://localhost:3000/api/", cfg.DnD5eAPIBaseURL)
}

func (s *ConfigTestSuite) TestInvalidSettings() {
	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "port out of range", key: "PORT", value: "70000", field: "PORT"},
		{name: "unknown backend", key: "CATALOG_CACHE_BACKEND", value: "memcached", field: "CATALOG_CACHE_BACKEND"},
		{name: "redis without url", key: "CATALOG_CACHE_BACKEND", value: "redis", field: "REDIS_URL"},
		{name: "zero session ttl", key: "SESSION_TTL", value: "0s", field: "SESSION_TTL"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "loud", field: "LOG_LEVEL"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml", field: "LOG_FORMAT"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			cfg, err := config.Load(s.missingFile())
			s.Require().Error(err)
			s.Nil(cfg)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestUnparseableValue() {
	s.T().Setenv("DND5E_HTTP_TIMEOUT", "soon")

	_, err := config.Load(s.missingFile())
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestParseLogLevel() {
	testCases := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := config.ParseLogLevel(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.want, level)
		})
	}

	_, err := config.ParseLogLevel("verbose")
	s.True(errors.IsInvalidArgument(err))
}
