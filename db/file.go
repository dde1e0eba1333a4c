// Package db
package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// fileDB writes one <collection>.json file per collection inside Dir.
type fileDB struct {
	dir    string
	mu     sync.Mutex
	logger *zap.Logger
}

func newFileDB(cfg Config) (*fileDB, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	f := &fileDB{dir: dir, logger: cfg.Logger.With(zap.String("db", "file"))}
	if cfg.FlushDB {
		cfg.Logger.Info("Start flush data directory", zap.String("dir", dir))
		for _, name := range Collections {
			if err := os.Remove(f.path(name)); err != nil && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}
	return f, nil
}

func (f *fileDB) path(name string) string {
	return filepath.Join(f.dir, fmt.Sprintf("%s.json", name))
}

func (f *fileDB) Load(ctx context.Context, name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(name))
	if os.IsNotExist(err) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes to a temp file first and renames it over the old one, so a
// crash leaves either the previous or the new document on disk.
func (f *fileDB) Save(ctx context.Context, name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	filePath := f.path(name)
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tempPath, filePath); err != nil {
		f.logger.Warn("cannot replace collection file", zap.String("collection", name), zap.Error(err))
		return err
	}
	return nil
}

func (f *fileDB) Close(ctx context.Context) error {
	return nil
}
