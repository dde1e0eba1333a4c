// Package db
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const KeyCollection = "#collection#%s"

type redisDB struct {
	client *redis.Client
	logger *zap.Logger
}

func newRedis(cfg Config) (*redisDB, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.URL,
		MinIdleConns: cfg.MinConn,
		PoolSize:     cfg.MaxConn,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	if cfg.FlushDB {
		msg, err := redisClient.FlushDB(context.Background()).Result()
		if err != nil || msg != "OK" {
			_ = redisClient.Close()
			return nil, fmt.Errorf("cannot flush redis: %v", err)
		}
	}

	return &redisDB{
		client: redisClient,
		logger: cfg.Logger.With(zap.String("db", "redis")),
	}, nil
}

func (r *redisDB) Load(ctx context.Context, name string) ([]byte, error) {
	result, err := r.client.Get(ctx, fmt.Sprintf(KeyCollection, name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *redisDB) Save(ctx context.Context, name string, data []byte) error {
	if err := r.client.Set(ctx, fmt.Sprintf(KeyCollection, name), data, 0).Err(); err != nil {
		r.logger.Warn("cannot set collection", zap.String("collection", name), zap.Error(err))
		return err
	}
	return nil
}

func (r *redisDB) Close(ctx context.Context) error {
	return r.client.Close()
}
