package securestore

import "sync"

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)

// Memory is an in-process Store for tests and development. Values are copied
// on the way in and out so callers cannot alias the internal map.
type Memory struct {
	mu         sync.RWMutex
	values     map[string][]byte
	protection Protection
}

// NewMemory creates an empty in-memory store carrying the declared
// protection tier. The tier is recorded, not enforced.
func NewMemory(protection Protection) *Memory {
	return &Memory{
		values:     make(map[string][]byte),
		protection: protection,
	}
}

// Protection returns the tier declared at construction.
func (m *Memory) Protection() Protection {
	return m.protection
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(key string, value []byte) error {
	in := make([]byte, len(value))
	copy(in, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = in
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
