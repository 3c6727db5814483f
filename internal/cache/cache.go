package cache

import "sync"

// Cache holds serialized comparison results keyed by a request digest.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Memory is the fallback used when no Redis address is configured, and in tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
