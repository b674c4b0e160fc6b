package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StateKey is the slot key the to-do state is stored under.
const StateKey = "todoListState"

// Slot is a single-writer key-value store holding whole blobs.
// Set overwrites the previous value unconditionally.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// OpenSlot opens the backend selected by cfg.
func OpenSlot(ctx context.Context, cfg Config) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendFile:
		return NewFileSlot(cfg.Dir)
	case BackendSQLite:
		return OpenSQLiteSlot(ctx, cfg.Dir)
	case BackendMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// MemorySlot keeps values in process memory.
type MemorySlot struct {
	mu   sync.Mutex
	vals map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{vals: map[string][]byte{}}
}

func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlot) Close() error { return nil }
