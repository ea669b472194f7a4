package cache

import (
	"container/list"
	"log/slog"
	"time"
)

type entry[V any] struct {
	key          string
	value        V
	expiresAt    time.Time
	lastAccessed time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// touch marks the element as the most recently used one.
// Must be called with lock held.
func (s *Store[V]) touch(elem *list.Element, now time.Time) {
	elem.Value.(*entry[V]).lastAccessed = now
	s.recency.MoveToFront(elem)
}

// evictOldest removes the least recently used entry.
// The back of the recency list always holds the entry with the oldest
// lastAccessed; entries touched at the same instant are ordered by call order,
// so the one touched first is evicted first.
// Must be called with lock held.
func (s *Store[V]) evictOldest(now time.Time) {
	elem := s.recency.Back()
	if elem == nil {
		return
	}
	e := s.removeElement(elem)
	s.evictions++
	s.log.Debug("cache entry evicted",
		slog.String("key", e.key),
		slog.Duration("idle", now.Sub(e.lastAccessed)),
	)
}

// Must be called with lock held.
func (s *Store[V]) removeElement(elem *list.Element) *entry[V] {
	s.recency.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(s.items, e.key)
	return e
}
