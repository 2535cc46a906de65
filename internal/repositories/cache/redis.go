package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dex-api/internal/errors"
	redisclient "github.com/KirkDiggler/dex-api/internal/redis"
)

// DefaultRedisKey is where the document lives when no key is configured
const DefaultRedisKey = "dex:cache:document"

// RedisConfig contains configuration for the Redis persister.
type RedisConfig struct {
	Client redisclient.Client
	Key    string
}

// Validate validates the RedisConfig and sets defaults.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Key == "" {
		cfg.Key = DefaultRedisKey
	}
	return nil
}

// RedisPersister keeps the whole document under a single redis key, so each
// save is still one whole-value replacement.
type RedisPersister struct {
	client redisclient.Client
	key    string
}

// NewRedisPersister creates a redis backed persister
func NewRedisPersister(cfg *RedisConfig) (*RedisPersister, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &RedisPersister{
		client: cfg.Client,
		key:    cfg.Key,
	}, nil
}

// Load reads the document
func (p *RedisPersister) Load(ctx context.Context) (Data, error) {
	raw, err := p.client.Get(ctx, p.key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get cache document %s", p.key)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "cache document %s is corrupt", p.key)
	}
	return data, nil
}

// Save replaces the document
func (p *RedisPersister) Save(ctx context.Context, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache document")
	}

	if err := p.client.Set(ctx, p.key, payload, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set cache document %s", p.key)
	}
	return nil
}

// Describe names the backend
func (p *RedisPersister) Describe() string {
	return "redis:" + p.key
}
