// Package cache memoizes formatted result pages keyed by the canonical
// query parameters. Entries expire after a short TTL; every write also
// sweeps entries past a longer staleness horizon to bound memory.
package cache

import (
	"sync"
	"time"
)

// Default expiry windows.
const (
	DefaultTTL          = 30 * time.Second
	DefaultStaleHorizon = 5 * time.Minute
)

type entry struct {
	value     any
	writtenAt time.Time
}

// Store is the process-wide result cache. It is safe for concurrent
// use; all access is serialized through one mutex.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	stale   time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New creates a Store with the given TTL and staleness horizon.
// Non-positive values fall back to the defaults.
func New(ttl, stale time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if stale <= 0 {
		stale = DefaultStaleHorizon
	}
	return &Store{
		ttl:     ttl,
		stale:   stale,
		now:     func() time.Time { return time.Now().UTC() },
		entries: make(map[string]entry),
	}
}

// Get returns the stored value for key if it is within the TTL.
// An expired entry is a miss; it is left for the next write's sweep.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.writtenAt) >= s.ttl {
		return nil, false
	}
	return e.value, true
}

// Put stores a value and sweeps every entry older than the staleness
// horizon.
func (s *Store) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.Sub(e.writtenAt) >= s.stale {
			delete(s.entries, k)
		}
	}
	s.entries[key] = entry{value: value, writtenAt: now}
}

// Len reports the number of stored entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// setClock overrides the time source. For testing.
func (s *Store) setClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
