package envtab

import (
	"sort"
	"sync"
)

// Memory is a minimal in-memory Table intended for tests and examples. It
// enumerates keys in insertion order so reads over it stay deterministic.
type Memory struct {
	mu     sync.RWMutex
	order  []string
	values map[string]string
}

// NewMemory constructs an empty in-memory table.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// FromMap constructs a Memory table seeded from entries. Keys are inserted in
// sorted order so enumeration stays deterministic regardless of map layout.
func FromMap(entries map[string]string) *Memory {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := NewMemory()
	for _, key := range keys {
		table.order = append(table.order, key)
		table.values[key] = entries[key]
	}
	return table
}

// Keys returns the current keys in insertion order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Lookup reports the value stored under key.
func (m *Memory) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key. Existing keys keep their enumeration position.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
	return nil
}

// Delete removes key. Removing an absent key is a no-op.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.values[key]; !exists {
		return nil
	}
	delete(m.values, key)
	for i, existing := range m.order {
		if existing == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// Snapshot returns a detached copy of the current entries.
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	for key, value := range m.values {
		out[key] = value
	}
	return out
}
