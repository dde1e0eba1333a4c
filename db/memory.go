// Package db
package db

import (
	"context"
	"sync"
)

type memoryDB struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryDB keeps collections in process memory, for tests and throwaway runs.
func NewMemoryDB() Client {
	return &memoryDB{data: make(map[string][]byte)}
}

func (m *memoryDB) Load(ctx context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[name]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *memoryDB) Save(ctx context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[name] = stored
	return nil
}

func (m *memoryDB) Close(ctx context.Context) error {
	return nil
}
