package mediacache

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryStore keeps documents in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
	closed      bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]json.RawMessage)}
}

func (m *MemoryStore) Get(_ context.Context, collection, key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	value, ok := m.collections[collection][key]
	if !ok {
		return nil, false, nil
	}
	return append(json.RawMessage(nil), value...), true, nil
}

func (m *MemoryStore) Put(_ context.Context, collection, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	entries, ok := m.collections[collection]
	if !ok {
		entries = make(map[string]json.RawMessage)
		m.collections[collection] = entries
	}
	entries[key] = append(json.RawMessage(nil), value...)
	return nil
}

func (m *MemoryStore) Keys(_ context.Context, collection string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, len(m.collections[collection]))
	for key := range m.collections[collection] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Count(_ context.Context, collection string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, ErrClosed
	}
	return len(m.collections[collection]), nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
