package cache

import (
	"container/list"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultTTL is the TTL SetDefault applies unless WithDefaultTTL overrides it.
const DefaultTTL = 60 * time.Second

// DefaultMaxSize is the capacity used by NewFromConfig when none is configured.
const DefaultMaxSize = 1000

// Store is a thread-safe, size-bounded key/value cache with per-entry TTL.
// When the store is full, the least recently used entry is evicted to make
// room for a new key.
type Store[V any] struct {
	maxSize    int
	defaultTTL time.Duration
	clock      clock.Clock
	log        *slog.Logger

	mu      sync.Mutex
	items   map[string]*list.Element
	recency *list.List // front is the most recently used entry

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64
}

// New creates a store holding at most maxSize entries.
// The capacity must be positive, otherwise it panics.
func New[V any](maxSize int, opts ...Option) *Store[V] {
	if maxSize <= 0 {
		panic("cache: max size must be positive")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Store[V]{
		maxSize:    maxSize,
		defaultTTL: o.defaultTTL,
		clock:      o.clock,
		log:        o.logger,
		items:      make(map[string]*list.Element, maxSize),
		recency:    list.New(),
	}
}

// Get returns the value stored under key.
// Expired entries are removed on read and reported as a miss.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V

	elem, ok := s.items[key]
	if !ok {
		s.misses++
		return zero, false
	}

	now := s.clock.Now()
	e := elem.Value.(*entry[V])
	if e.expired(now) {
		s.removeElement(elem)
		s.expirations++
		s.misses++
		return zero, false
	}

	s.touch(elem, now)
	s.hits++
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl stores an entry that
// is stale as soon as the clock moves. Overwriting an existing key resets both
// its expiry and its recency; it never triggers eviction.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	if elem, ok := s.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = now.Add(ttl)
		s.touch(elem, now)
		return
	}

	// Make room before admitting the new key so size never exceeds maxSize.
	if s.recency.Len() >= s.maxSize {
		s.evictOldest(now)
	}

	s.items[key] = s.recency.PushFront(&entry[V]{
		key:          key,
		value:        value,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	})
}

// SetDefault stores value under key using the store's default TTL.
func (s *Store[V]) SetDefault(key string, value V) {
	s.Set(key, value, s.defaultTTL)
}

// Delete removes key from the store and reports whether it was present.
func (s *Store[V]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		return false
	}
	s.removeElement(elem)
	return true
}

// InvalidatePrefix removes every key starting with prefix and returns how
// many entries were removed. Every call scans the whole store.
func (s *Store[V]) InvalidatePrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, elem := range s.items {
		if strings.HasPrefix(key, prefix) {
			s.removeElement(elem)
			removed++
		}
	}

	if removed > 0 {
		s.log.Debug("cache prefix invalidated",
			slog.String("prefix", prefix),
			slog.Int("count", removed),
		)
	}
	return removed
}

// CleanupExpired removes all entries whose TTL has elapsed and returns how
// many were removed.
func (s *Store[V]) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for elem := s.recency.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[V]).expired(now) {
			s.removeElement(elem)
			removed++
		}
		elem = prev
	}
	s.expirations += uint64(removed)
	return removed
}

// Clear removes all entries, resets the counters and returns how many
// entries were dropped.
func (s *Store[V]) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.recency.Len()
	s.items = make(map[string]*list.Element, s.maxSize)
	s.recency.Init()
	s.hits, s.misses, s.evictions, s.expirations = 0, 0, 0, 0
	return removed
}

// Len returns the number of entries currently held, including expired ones
// that have not been swept yet.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recency.Len()
}

// Stats returns a snapshot of the store's size and counters.
func (s *Store[V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Size:        s.recency.Len(),
		MaxSize:     s.maxSize,
		Hits:        s.hits,
		Misses:      s.misses,
		Evictions:   s.evictions,
		Expirations: s.expirations,
	}
}

// MaxSize returns the capacity the store was created with.
func (s *Store[V]) MaxSize() int {
	return s.maxSize
}

// DefaultTTL returns the TTL applied by SetDefault.
func (s *Store[V]) DefaultTTL() time.Duration {
	return s.defaultTTL
}
