package tokencache

import "sync"

// Preferences is plain, unencrypted app-preference storage. Unlike secure
// storage it does not survive an application reinstall, which is exactly the
// asymmetry the installation marker relies on.
type Preferences interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Ensure MemoryPreferences implements Preferences.
var _ Preferences = (*MemoryPreferences)(nil)

// MemoryPreferences is an in-process Preferences for tests and development.
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (p *MemoryPreferences) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *MemoryPreferences) Set(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

func (p *MemoryPreferences) Remove(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
}
