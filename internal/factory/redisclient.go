package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wolfeidau/node-quotas/internal/config"
)

const pingTimeout = 2 * time.Second

// baseOptions - адрес и авторизация: из URL, если он задан, иначе из отдельных полей.
func baseOptions(cfg *config.Database) (*redis.Options, error) {
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, nil
}

// NewClientCounters - клиент для счётчиков квот.
func NewClientCounters(cfg *config.Database) (*redis.Client, error) {
	opts, err := baseOptions(cfg)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = cfg.Redis.Counters.DialTimeout
	opts.ReadTimeout = cfg.Redis.Counters.ReadTimeout
	opts.WriteTimeout = cfg.Redis.Counters.WriteTimeout
	opts.PoolSize = cfg.Redis.Counters.PoolSize

	return connect(opts)
}

// NewClientSubscriber - отдельный клиент для Pub/Sub, чтобы подписка не занимала пул счётчиков.
func NewClientSubscriber(cfg *config.Database) (*redis.Client, error) {
	opts, err := baseOptions(cfg)
	if err != nil {
		return nil, err
	}
	opts.ReadTimeout = cfg.Redis.Subscriber.ReadTimeout
	opts.PoolSize = cfg.Redis.Subscriber.PoolSize

	return connect(opts)
}

func connect(opts *redis.Options) (*redis.Client, error) {
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
