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

// Package cache
package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type Adapter string

const (
	RedisAdapter  Adapter = "redis"
	MemoryAdapter Adapter = "memory"
)

const defaultSessionTTL = 12 * time.Hour

var ErrCacheMiss = errors.New("cache miss")

type Config struct {
	Adapter Adapter
	URL     string
	DB      int

	IsFlush bool

	SessionTTL time.Duration

	Logger *zap.Logger
}

// Client keeps login sessions as token -> user id with an expiry.
type Client interface {
	SetSession(ctx context.Context, token string, userID int64) error
	// Session returns ErrCacheMiss for unknown or expired tokens.
	Session(ctx context.Context, token string) (int64, error)
	DeleteSession(ctx context.Context, token string) error
	Close() error
}

func New(cfg Config) (Client, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	switch cfg.Adapter {
	case RedisAdapter:
		return newRedis(cfg)
	case MemoryAdapter, "":
		return NewMemory(cfg.SessionTTL, time.Now), nil
	}
	return nil, errors.New("invalid cache config")
}
