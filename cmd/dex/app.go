package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/dex-api/internal/clients/catalog"
	"github.com/KirkDiggler/dex-api/internal/config"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	"github.com/KirkDiggler/dex-api/internal/pkg/clock"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dex-api/internal/redis"
	"github.com/KirkDiggler/dex-api/internal/repositories/cache"
	"github.com/KirkDiggler/dex-api/internal/services/evolution"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

// app holds the wired components shared by every command
type app struct {
	store   *cache.Store
	catalog catalog.Client
	lookup  lookup.Service
	closers []func() error
}

func newApp(ctx context.Context, c *config.Config) (*app, error) {
	a := &app{}

	persister, err := a.newPersister(ctx, c)
	if err != nil {
		return nil, err
	}

	store, err := cache.New(ctx, &cache.Config{
		Persister: persister,
		ImageDir:  c.ImageDir,
		Encoder:   cache.PNGEncoder,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cache")
	}
	a.store = store

	client, err := catalog.New(&catalog.Config{
		BaseURL:           c.CatalogBaseURL,
		SpriteBaseURL:     c.SpriteBaseURL,
		HTTPTimeout:       c.HTTPTimeout,
		RequestsPerSecond: c.RateLimit,
		Cache:             store,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog client")
	}
	a.catalog = client

	resolver, err := evolution.New(&evolution.Config{Varieties: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create evolution resolver")
	}

	calculator, err := typechart.New(&typechart.Config{Relations: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create type chart")
	}

	orchestrator, err := lookup.NewOrchestrator(&lookup.Config{
		Client:      client,
		Resolver:    resolver,
		Calculator:  calculator,
		IDGenerator: idgen.NewUUID("lookup"),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, err
	}
	a.lookup = orchestrator

	return a, nil
}

func (a *app) newPersister(ctx context.Context, c *config.Config) (cache.Persister, error) {
	if c.CacheBackend != config.BackendRedis {
		return cache.NewFilePersister(c.CacheFile)
	}

	client, err := redis.Connect(ctx, &redis.Config{
		Addr:        c.RedisAddr,
		DialTimeout: 5 * time.Second,
		IOTimeout:   3 * time.Second,
		MaxRetries:  2,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	return cache.NewRedisPersister(&cache.RedisConfig{
		Client: client,
		Key:    c.RedisKey,
	})
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
}
