// Package redis connects the cache document store to a shared redis
// instance. Tests point it at miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Client is the part of go-redis the cache document store uses
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

// Config describes a single redis instance
type Config struct {
	Addr        string
	DialTimeout time.Duration
	// IOTimeout bounds each read and write
	IOTimeout  time.Duration
	MaxRetries int
	TLS        bool
}

// Validate checks the address and timeouts
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("redis config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Addr == "" {
		vb.RequiredField("Addr")
	}
	if c.DialTimeout < 0 {
		vb.Field("DialTimeout", "must not be negative")
	}
	if c.IOTimeout < 0 {
		vb.Field("IOTimeout", "must not be negative")
	}
	if c.MaxRetries < 0 {
		vb.Field("MaxRetries", "must not be negative")
	}
	return vb.Build()
}

// NewClient builds a client without touching the network
func NewClient(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := &goredis.Options{
		Addr:         cfg.Addr,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.IOTimeout,
		WriteTimeout: cfg.IOTimeout,
		MaxRetries:   cfg.MaxRetries,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return goredis.NewClient(opts), nil
}

// Connect builds a client and pings it, so a wrong address fails at startup
// rather than on the first cache write
func Connect(ctx context.Context, cfg *Config) (Client, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis at %s is unreachable", cfg.Addr)
	}
	return client, nil
}
