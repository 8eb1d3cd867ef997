package store

import (
	"context"
	"sync"
)

// MemoryCollections is an in-memory Collections implementation used in
// tests and available as a throwaway backend.
type MemoryCollections struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryCollections() *MemoryCollections {
	return &MemoryCollections{data: make(map[string][]byte)}
}

func (m *MemoryCollections) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryCollections) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryCollections) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
