// Package db
package db

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type Adapter string

const (
	MGO      Adapter = "mgo"
	Redis    Adapter = "redis"
	Postgres Adapter = "postgres"
	File     Adapter = "file"
	Memory   Adapter = "memory"
)

const (
	CUsers   = "users"
	CMembers = "members"
	CBills   = "bills"
	CVotes   = "votes"
)

// Collections lists every collection in load order.
var Collections = []string{CUsers, CMembers, CBills, CVotes}

var ErrCollectionNotFound = errors.New("collection not found")

type Config struct {
	DbAdapter Adapter
	DbName    string
	URL       string
	Dir       string
	MinConn   int
	MaxConn   int
	FlushDB   bool

	Logger *zap.Logger
}

// Client persists named collections as opaque serialized documents.
type Client interface {
	// Load returns the stored document or ErrCollectionNotFound.
	Load(ctx context.Context, name string) ([]byte, error)
	// Save replaces the stored document.
	Save(ctx context.Context, name string, data []byte) error
	Close(ctx context.Context) error
}

func NewClient(cfg Config) (Client, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	switch cfg.DbAdapter {
	case MGO:
		return newMongoDB(cfg)
	case Redis:
		return newRedis(cfg)
	case Postgres:
		return newPostgres(cfg)
	case File:
		return newFileDB(cfg)
	case Memory:
		return NewMemoryDB(), nil
	default:
		return nil, errors.New("invalid db config")
	}
}
