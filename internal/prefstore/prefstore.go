// Package prefstore keeps per-visitor preference values.
package prefstore

import (
	"context"
	"sync"
)

// KV stores string values under (visitor, key).
type KV interface {
	Get(ctx context.Context, visitor, key string) (value string, ok bool, err error)
	Set(ctx context.Context, visitor, key, value string) error
}

// Memory is an in-process KV. Values are lost on restart and never evicted,
// so it is for development and tests, not production.
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]map[string]string{}}
}

func (m *Memory) Get(_ context.Context, visitor, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[visitor][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, visitor, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[visitor] == nil {
		m.values[visitor] = map[string]string{}
	}
	m.values[visitor][key] = value
	return nil
}
