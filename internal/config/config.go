// Package config loads process configuration from DEX_* environment variables
package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Cache backends for the document tier
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the process configuration. Command line flags may override any
// field after Load.
type Config struct {
	CatalogBaseURL string        `env:"DEX_CATALOG_BASE_URL" envDefault:"https://pokeapi.co/api/v2/"`
	SpriteBaseURL  string        `env:"DEX_SPRITE_BASE_URL" envDefault:"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/"`
	HTTPTimeout    time.Duration `env:"DEX_HTTP_TIMEOUT" envDefault:"10s"`
	RateLimit      float64       `env:"DEX_RATE_LIMIT" envDefault:"0"`

	CacheFile    string `env:"DEX_CACHE_FILE" envDefault:"dex_cache.json"`
	ImageDir     string `env:"DEX_IMAGE_DIR" envDefault:"dex_images"`
	CacheBackend string `env:"DEX_CACHE_BACKEND" envDefault:"file"`
	RedisAddr    string `env:"DEX_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisKey     string `env:"DEX_REDIS_KEY" envDefault:"dex:cache:document"`

	GRPCPort     int    `env:"DEX_GRPC_PORT" envDefault:"50051"`
	LogLevel     string `env:"DEX_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string `env:"DEX_OTEL_ENDPOINT"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(c.CatalogBaseURL); err != nil || !u.IsAbs() {
		vb.Fieldf("CatalogBaseURL", "must be an absolute url, got %q", c.CatalogBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		vb.Field("HTTPTimeout", "must be positive")
	}
	if c.RateLimit < 0 {
		vb.Field("RateLimit", "must not be negative")
	}
	if c.ImageDir == "" {
		vb.RequiredField("ImageDir")
	}
	vb.OneOf("CacheBackend", c.CacheBackend, BackendFile, BackendRedis)
	if c.CacheBackend == BackendFile && c.CacheFile == "" {
		vb.RequiredField("CacheFile")
	}
	if c.CacheBackend == BackendRedis && c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be a valid port, got %d", c.GRPCPort)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	return vb.Build()
}

// SlogLevel returns the configured log level, falling back to info
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
