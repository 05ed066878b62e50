package storage

import "sync"

// Memory is an in-memory Store for tests and for running without a
// writable data directory. Contents do not survive restarts.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string

	// SetErr, when non-nil, is returned by Set. Test helper.
	SetErr error
}

// Verify Memory implements Store at compile time.
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
