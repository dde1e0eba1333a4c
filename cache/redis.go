/*
 *  Copyright 2018 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	KeySession = "#session#%s"
)

type Redis struct {
	cfg    Config
	client *redis.Client

	logger *zap.Logger
}

func newRedis(cfg Config) (Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.URL,
		DB:   cfg.DB,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	if cfg.IsFlush {
		msg, err := redisClient.FlushDB(context.Background()).Result()
		if err != nil || msg != "OK" {
			_ = redisClient.Close()
			return nil, fmt.Errorf("cannot flush cache: %v", err)
		}
	}

	logger := cfg.Logger.With(zap.String("cache", "redis"))
	client := &Redis{
		client: redisClient,
		logger: logger,
	}
	client.cfg = cfg
	return client, nil
}

func (c *Redis) SetSession(ctx context.Context, token string, userID int64) error {
	key := fmt.Sprintf(KeySession, token)
	if err := c.client.Set(ctx, key, strconv.FormatInt(userID, 10), c.cfg.SessionTTL).Err(); err != nil {
		c.logger.Warn("Cannot store session", zap.Error(err))
		return err
	}
	return nil
}

func (c *Redis) Session(ctx context.Context, token string) (int64, error) {
	result, err := c.client.Get(ctx, fmt.Sprintf(KeySession, token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (c *Redis) DeleteSession(ctx context.Context, token string) error {
	removed, err := c.client.Del(ctx, fmt.Sprintf(KeySession, token)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrCacheMiss
	}
	return nil
}

func (c *Redis) Close() error {
	return c.client.Close()
}
