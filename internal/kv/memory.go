package kv

import (
	"fmt"
	"sort"
	"sync"

	"github.com/daykeep/daykeep/internal/constants"
)

// MemoryStore is an in-memory key-value medium used in tests and as a
// scratch medium for imports.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	quota int64
	// FailWrites makes every Set return ErrQuotaExceeded, for exercising
	// write-rejection paths.
	FailWrites bool
}

// NewMemory returns an empty in-memory medium. quota <= 0 selects the
// default quota.
func NewMemory(quota int64) *MemoryStore {
	if quota <= 0 {
		quota = constants.DefaultQuotaBytes
	}
	return &MemoryStore{data: make(map[string][]byte), quota: quota}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNoKey
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("%w: writes disabled", ErrQuotaExceeded)
	}

	used := m.usedLocked()
	used -= int64(len(m.data[key]))
	if _, ok := m.data[key]; ok {
		used -= int64(len(key))
	}
	if used+int64(len(key)+len(value)) > m.quota {
		return fmt.Errorf("%w: %d of %d bytes used", ErrQuotaExceeded, m.usedLocked(), m.quota)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Usage() (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usedLocked(), m.quota, nil
}

func (m *MemoryStore) usedLocked() int64 {
	var used int64
	for key, value := range m.data {
		used += int64(len(key) + len(value))
	}
	return used
}

func (m *MemoryStore) Close() error {
	return nil
}
