package repository

import (
	"context"
	"sync"
	"time"
)

const sweepInterval = time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is an in-process CacheRepository, used when no Redis
// address is configured. Expired entries are dropped on read and by a
// periodic sweep until Close is called.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache() *MemoryCache {
	m := &MemoryCache{
		data:      make(map[string]memoryEntry),
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

func (m *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

// Close stops the sweep. It is safe to call more than once.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopSweep) })
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}

	if entry.expired(m.now()) {
		m.mu.Lock()
		// A concurrent Set may have replaced the entry since the read lock.
		if current, ok := m.data[key]; ok && current.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones not yet swept
// included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
