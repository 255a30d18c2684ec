package cache

import (
	"sync"
	"time"
)

// Memory is the in-process payload cache used for a single renderer lifetime.
// Entries are whole-value replacements: a refresh overwrites the previous
// entry, nothing is merged. Expired entries are treated as misses and evicted
// lazily on lookup.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	defaultTTL time.Duration

	// Now is the clock used for expiry checks. Tests swap it for a fake.
	Now func() time.Time
}

type memoryEntry struct {
	value    []byte
	expireAt time.Time // zero => no TTL
}

// NewMemory returns an empty in-memory store. defaultTTL applies when Put is
// called with ttl <= 0; a zero defaultTTL means entries never expire.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		entries:    make(map[string]memoryEntry),
		defaultTTL: defaultTTL,
		Now:        time.Now,
	}
}

// Get returns the cached value if present and not expired.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expireAt.IsZero() && m.Now().After(e.expireAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, ErrExpired
	}
	return append([]byte(nil), e.value...), nil
}

// Put replaces the entry for key with value expiring at now+ttl.
func (m *Memory) Put(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	var expireAt time.Time
	if ttl > 0 {
		expireAt = m.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: append([]byte(nil), value...), expireAt: expireAt}
	m.mu.Unlock()
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len reports the number of live entries, counting expired ones that have not
// been looked up yet.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
