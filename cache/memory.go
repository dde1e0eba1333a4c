package cache

import (
	"context"
	"sync"
	"time"
)

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

type Memory struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

// NewMemory keeps sessions in process. Expired entries are dropped on lookup
// and swept whenever a new session is stored.
func NewMemory(ttl time.Duration, now func() time.Time) *Memory {
	return &Memory{
		ttl:      ttl,
		now:      now,
		sessions: make(map[string]memorySession),
	}
}

func (m *Memory) SetSession(ctx context.Context, token string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for t, s := range m.sessions {
		if !now.Before(s.expiresAt) {
			delete(m.sessions, t)
		}
	}
	m.sessions[token] = memorySession{userID: userID, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *Memory) Session(ctx context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return 0, ErrCacheMiss
	}
	if !m.now().Before(s.expiresAt) {
		delete(m.sessions, token)
		return 0, ErrCacheMiss
	}
	return s.userID, nil
}

func (m *Memory) DeleteSession(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return ErrCacheMiss
	}
	delete(m.sessions, token)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
