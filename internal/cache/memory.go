package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

type memoryEntry struct {
	result    types.OptimizationResult
	expiresAt time.Time
}

// Memory is an in-process Cache with per-entry TTL. Expired entries are
// dropped lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory returns an empty in-memory cache whose entries live for ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get implements Cache. The returned result is a shallow copy: its slice
// fields alias the cached entry, so callers must treat it as read-only.
func (m *Memory) Get(_ context.Context, key string) (*types.OptimizationResult, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	result := entry.result
	return &result, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key string, result *types.OptimizationResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		result:    *result,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}
