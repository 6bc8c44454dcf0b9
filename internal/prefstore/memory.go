package prefstore

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. Failures can be injected to exercise
// callers' error handling.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	loadErr error
	saveErr error
	saves   int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// WithValue seeds key with value.
func (m *MemoryStore) WithValue(key, value string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return m
}

// FailLoads makes every Load return err. A nil err clears the failure.
func (m *MemoryStore) FailLoads(err error) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
	return m
}

// FailSaves makes every Save return err without storing. A nil err clears the failure.
func (m *MemoryStore) FailSaves(err error) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
	return m
}

func (m *MemoryStore) Load(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return "", m.loadErr
	}
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStore) Save(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.values[key] = value
	return nil
}

// Saves counts Save calls, including failed ones.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
