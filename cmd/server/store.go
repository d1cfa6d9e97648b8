package main

import (
	"context"
	"fmt"

	"horizonx-storefront/internal/adapters/memory"
	"horizonx-storefront/internal/adapters/postgres"
	"horizonx-storefront/internal/adapters/redis"
	"horizonx-storefront/internal/config"
	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"
)

func openSessionStore(ctx context.Context, cfg *config.Config, log logger.Logger) (domain.SessionStore, func(), error) {
	switch cfg.SessionDriver {
	case config.SessionDriverRedis:
		client, err := redis.Init(ctx, &redis.ClientOptions{
			Address:  cfg.RedisAddress,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init redis: %w", err)
		}
		log.Info("redis connected", "address", cfg.RedisAddress)
		return redis.NewSessionStore(client), func() { client.Close() }, nil

	case config.SessionDriverPostgres:
		pool, err := postgres.InitDB(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init DB: %w", err)
		}
		return postgres.NewSessionRepository(pool), pool.Close, nil

	default:
		return memory.NewSessionStore(), func() {}, nil
	}
}
