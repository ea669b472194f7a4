// Package cache provides a generic, thread-safe, process-local key/value store
// with per-entry TTL and LRU (Least Recently Used) eviction.
//
// The store shadows expensive computations and database reads inside a single
// server instance. It is advisory: every caller must be able to recompute a
// value on a miss, and restarting the process discards everything.
//
// # Key Features
//
//   - Generic value type per store instance
//   - Absolute expiry per entry; expired entries are never returned
//   - LRU eviction when the configured capacity is reached
//   - Prefix invalidation for families of related keys
//   - Hit/miss/eviction counters and a Prometheus collector
//   - Optional background janitor reclaiming expired entries
//   - O(1) Get, Set and Delete
//
// # Usage
//
// Create one store per process in the composition root and pass it to consumers:
//
//	store := cache.New[CampaignStats](1000, cache.WithDefaultTTL(time.Minute))
//
// Cache-aside:
//
//	key := cache.Key("campaign", id, "stats")
//	if stats, ok := store.Get(key); ok {
//		return stats, nil
//	}
//
//	stats, err := repo.CampaignStats(ctx, id)
//	if err != nil {
//		return CampaignStats{}, err
//	}
//	store.Set(key, stats, 30*time.Second)
//
// Invalidate everything derived from one campaign after it changes:
//
//	removed := store.InvalidatePrefix(cache.Prefix("campaign", id))
//
// # Key Naming
//
// Keys are opaque strings, but callers build them from colon-delimited segments
// ("<entity>:<id>:<facet>"). Key and Prefix implement that convention. Prefix
// always ends with the separator so that invalidating campaign 1 does not touch
// campaign 12.
//
// # Expiration
//
// Every entry carries an absolute expiry computed at Set time. An overwrite is
// a fresh insert: expiry and recency are both reset. Expired entries are
// removed lazily by Get, or in bulk by CleanupExpired. Until then they still
// count toward capacity and show up in Stats().Size. Run a Janitor to sweep
// periodically:
//
//	j := cache.NewJanitor(store, time.Minute, cache.WithLogger(log))
//	go j.Run(ctx)
//
// # Capacity Management
//
// When a new key is set and the store is full:
//
//  1. The least recently used entry is identified
//  2. The entry is removed
//  3. The new entry is added
//
// Capacity is checked before insertion, so Len never exceeds the configured
// maximum. Overwriting an existing key never evicts.
//
// Entries are considered "recently used" when they are:
//   - Retrieved with Get() (hits only)
//   - Added or overwritten with Set()
//
// Recency is tracked with an intrusive list rather than timestamps, so two
// entries touched within the same clock tick are still ordered by call order.
//
// # Thread Safety
//
// A single mutex guards each store. Every operation, including the
// read-check-delete sequence of Get and the evict-then-insert sequence of Set,
// runs under that lock.
//
// # Statistics
//
// Stats returns a snapshot of size, capacity and cumulative counters since the
// store was created or last cleared. Register NewCollector with a Prometheus
// registry to export them:
//
//	reg.MustRegister(cache.NewCollector("productlobby", "app", store))
//
// # Testing
//
// Pass a mock clock to control expiry deterministically:
//
//	mock := clock.NewMock()
//	store := cache.New[string](10, cache.WithClock(mock))
//	store.Set("x", "v", time.Second)
//	mock.Add(2 * time.Second)
//	_, ok := store.Get("x") // ok == false
package cache
