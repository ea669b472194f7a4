package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CategoryLeaders/productlobby-sub011/pkg/cache"
)

func newMockStore[V any](t *testing.T, maxSize int) (*cache.Store[V], *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	return cache.New[V](maxSize, cache.WithClock(mock)), mock
}

func TestStore_Basic(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 3)

		s.Set("a", 1, time.Minute)
		s.Set("b", 2, time.Minute)

		val, ok := s.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		val, ok = s.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		assert.Equal(t, 2, s.Len())
	})

	t.Run("get non-existent", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 3)

		val, ok := s.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[string](t, 3)

		s.Set("a", "old", time.Minute)
		s.Set("a", "new", time.Minute)

		val, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, "new", val)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("values of any shape", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[any](t, 3)

		s.Set("map", map[string]int{"x": 1}, time.Minute)
		s.Set("nil", nil, time.Minute)

		val, ok := s.Get("map")
		require.True(t, ok)
		assert.Equal(t, map[string]int{"x": 1}, val)

		val, ok = s.Get("nil")
		assert.True(t, ok)
		assert.Nil(t, val)
	})
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	t.Run("expired entry is a miss", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[string](t, 3)

		s.Set("x", "v", time.Second)
		mock.Add(2 * time.Second)

		_, ok := s.Get("x")
		assert.False(t, ok)

		stats := s.Stats()
		assert.Equal(t, 0, stats.Size, "lazy expiration should remove the entry")
		assert.Equal(t, uint64(1), stats.Misses)
		assert.Equal(t, uint64(1), stats.Expirations)
	})

	t.Run("entry is live up to its expiry instant", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[string](t, 3)

		s.Set("x", "v", time.Second)
		mock.Add(time.Second)

		val, ok := s.Get("x")
		assert.True(t, ok)
		assert.Equal(t, "v", val)

		mock.Add(time.Nanosecond)
		_, ok = s.Get("x")
		assert.False(t, ok)
	})

	t.Run("expired entries count toward size until read", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[int](t, 3)

		s.Set("a", 1, time.Second)
		mock.Add(5 * time.Second)

		assert.Equal(t, 1, s.Stats().Size)
	})

	t.Run("overwrite resets ttl", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[int](t, 3)

		s.Set("a", 1, 10*time.Second)
		mock.Add(8 * time.Second)
		s.Set("a", 2, 5*time.Second)
		mock.Add(6 * time.Second)

		_, ok := s.Get("a")
		assert.False(t, ok, "ttl must not accumulate from the old entry")
	})

	t.Run("non-positive ttl is stale once the clock moves", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		s := cache.New[int](3, cache.WithClock(mock), cache.WithDefaultTTL(10*time.Second))

		s.Set("zero", 1, 0)
		s.Set("negative", 2, -time.Second)
		s.SetDefault("default", 3)

		mock.Add(time.Nanosecond)
		for _, key := range []string{"zero", "negative"} {
			_, ok := s.Get(key)
			assert.False(t, ok, key)
		}

		val, ok := s.Get("default")
		assert.True(t, ok)
		assert.Equal(t, 3, val)

		mock.Add(10 * time.Second)
		_, ok = s.Get("default")
		assert.False(t, ok)
		assert.Equal(t, uint64(3), s.Stats().Expirations)
	})

	t.Run("default ttl is one minute", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[int](t, 3)
		assert.Equal(t, time.Minute, s.DefaultTTL())

		s.SetDefault("a", 1)
		mock.Add(59 * time.Second)
		_, ok := s.Get("a")
		assert.True(t, ok)

		mock.Add(2 * time.Second)
		_, ok = s.Get("a")
		assert.False(t, ok)
	})
}

func TestStore_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("evict least recently used", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[int](t, 2)

		s.Set("a", 1, time.Minute)
		mock.Add(time.Millisecond)
		s.Set("b", 2, time.Minute)
		mock.Add(time.Millisecond)

		// Touch "a" so that "b" becomes the least recently used entry.
		_, ok := s.Get("a")
		require.True(t, ok)
		mock.Add(time.Millisecond)

		s.Set("c", 3, time.Minute)

		_, ok = s.Get("b")
		assert.False(t, ok, "b should have been evicted")

		val, ok := s.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		val, ok = s.Get("c")
		assert.True(t, ok)
		assert.Equal(t, 3, val)

		assert.Equal(t, uint64(1), s.Stats().Evictions)
	})

	t.Run("set updates recency", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 3)

		s.Set("a", 1, time.Minute)
		s.Set("b", 2, time.Minute)
		s.Set("c", 3, time.Minute)
		s.Set("a", 10, time.Minute)
		s.Set("d", 4, time.Minute)

		_, ok := s.Get("b")
		assert.False(t, ok, "b should have been evicted")

		val, ok := s.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 10, val)
	})

	t.Run("same instant ties evict the earliest touch", func(t *testing.T) {
		t.Parallel()
		// The mock clock never advances here, so every entry shares one timestamp.
		s, _ := newMockStore[int](t, 3)

		s.Set("a", 1, time.Minute)
		s.Set("b", 2, time.Minute)
		s.Set("c", 3, time.Minute)
		s.Get("a")
		s.Set("d", 4, time.Minute)

		_, ok := s.Get("b")
		assert.False(t, ok)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("miss does not refresh recency", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore[int](t, 2)

		s.Set("a", 1, time.Second)
		s.Set("b", 2, time.Minute)
		mock.Add(2 * time.Second)

		// Expired "a" is dropped on read, freeing a slot.
		_, ok := s.Get("a")
		require.False(t, ok)

		s.Set("c", 3, time.Minute)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, uint64(0), s.Stats().Evictions)
	})

	t.Run("overwrite at capacity does not evict", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 2)

		s.Set("a", 1, time.Minute)
		s.Set("b", 2, time.Minute)
		s.Set("b", 20, time.Minute)

		_, ok := s.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, uint64(0), s.Stats().Evictions)
	})

	t.Run("capacity of 1", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 1)

		s.Set("a", 1, time.Minute)
		s.Set("b", 2, time.Minute)

		_, ok := s.Get("a")
		assert.False(t, ok)

		val, ok := s.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
	})

	t.Run("size never exceeds capacity", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 5)

		for i := range 100 {
			s.Set(fmt.Sprintf("k%d", i%17), i, time.Minute)
			require.LessOrEqual(t, s.Len(), 5)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	s, _ := newMockStore[int](t, 3)

	s.Set("a", 1, time.Minute)
	s.Set("b", 2, time.Minute)

	assert.True(t, s.Delete("b"))
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("b")
	assert.False(t, ok)

	before := s.Stats()
	assert.False(t, s.Delete("missing"))
	assert.Equal(t, before, s.Stats(), "deleting an absent key changes nothing")
}

func TestStore_InvalidatePrefix(t *testing.T) {
	t.Parallel()

	t.Run("removes exactly the matching keys", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[string](t, 10)

		s.Set("campaign:1:stats", "A", time.Minute)
		s.Set("campaign:2:stats", "B", time.Minute)
		s.Set("user:5", "C", time.Minute)

		assert.Equal(t, 2, s.InvalidatePrefix("campaign:"))

		val, ok := s.Get("user:5")
		assert.True(t, ok)
		assert.Equal(t, "C", val)

		_, ok = s.Get("campaign:1:stats")
		assert.False(t, ok)
		_, ok = s.Get("campaign:2:stats")
		assert.False(t, ok)
	})

	t.Run("separator keeps sibling ids apart", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 10)

		s.Set(cache.Key("campaign", 1, "stats"), 1, time.Minute)
		s.Set(cache.Key("campaign", 1, "comments"), 2, time.Minute)
		s.Set(cache.Key("campaign", 12, "stats"), 3, time.Minute)

		assert.Equal(t, 2, s.InvalidatePrefix(cache.Prefix("campaign", 1)))

		_, ok := s.Get("campaign:12:stats")
		assert.True(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 10)
		s.Set("a", 1, time.Minute)

		assert.Equal(t, 0, s.InvalidatePrefix("b"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("empty prefix matches everything", func(t *testing.T) {
		t.Parallel()
		s, _ := newMockStore[int](t, 10)
		s.Set("a", 1, time.Minute)
		s.Set("b", 2, time.Minute)

		assert.Equal(t, 2, s.InvalidatePrefix(""))
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_CleanupExpired(t *testing.T) {
	t.Parallel()
	s, mock := newMockStore[int](t, 10)

	s.Set("short1", 1, time.Second)
	s.Set("short2", 2, time.Second)
	s.Set("long", 3, time.Hour)

	assert.Equal(t, 0, s.CleanupExpired())

	mock.Add(2 * time.Second)
	assert.Equal(t, 2, s.CleanupExpired())
	assert.Equal(t, 1, s.Len())

	val, ok := s.Get("long")
	assert.True(t, ok)
	assert.Equal(t, 3, val)

	stats := s.Stats()
	assert.Equal(t, uint64(2), stats.Expirations)
	assert.Equal(t, uint64(0), stats.Misses, "sweeps do not count as misses")
}

func TestStore_ClearAndStats(t *testing.T) {
	t.Parallel()
	s, _ := newMockStore[int](t, 10)

	assert.Equal(t, cache.Stats{MaxSize: 10}, s.Stats())

	_, ok := s.Get("k")
	require.False(t, ok)
	s.Set("k", 1, time.Minute)
	_, ok = s.Get("k")
	require.True(t, ok)

	stats := s.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRatio(), 0.0001)

	assert.Equal(t, 1, s.Clear())
	assert.Equal(t, cache.Stats{MaxSize: 10}, s.Stats())

	assert.Equal(t, 0, s.Clear())
	assert.Equal(t, cache.Stats{MaxSize: 10}, s.Stats())
	assert.Equal(t, 0.0, s.Stats().HitRatio())
}

func TestStore_PanicsOnInvalidCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cache.New[int](0) })
	assert.Panics(t, func() { cache.New[int](-1) })
	assert.Panics(t, func() { cache.WithDefaultTTL(0) })
}

func TestStore_NewFromConfig(t *testing.T) {
	t.Parallel()

	s := cache.NewFromConfig[int](cache.Config{MaxSize: 5, DefaultTTL: 2 * time.Minute}, nil)
	assert.Equal(t, 5, s.MaxSize())
	assert.Equal(t, 2*time.Minute, s.DefaultTTL())

	s = cache.NewFromConfig[int](cache.Config{}, nil)
	assert.Equal(t, cache.DefaultMaxSize, s.MaxSize())
	assert.Equal(t, cache.DefaultTTL, s.DefaultTTL())
}

func TestStore_Concurrent(t *testing.T) {
	t.Parallel()
	const maxSize = 50
	s := cache.New[int](maxSize)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range 500 {
				key := fmt.Sprintf("k:%d", (worker*31+i)%120)
				switch i % 5 {
				case 0:
					s.Delete(key)
				case 1:
					s.InvalidatePrefix("k:1")
				case 2:
					s.CleanupExpired()
				default:
					s.Set(key, i, time.Minute)
					s.Get(key)
				}
				if n := s.Len(); n > maxSize {
					t.Errorf("size %d exceeds capacity %d", n, maxSize)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Stats().Size, maxSize)
}

func BenchmarkStore_Set(b *testing.B) {
	s := cache.New[int](1000)

	b.ResetTimer()
	for i := range b.N {
		s.Set(fmt.Sprint(i%2000), i, time.Minute)
	}
}

func BenchmarkStore_Get(b *testing.B) {
	s := cache.New[int](1000)
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprint(i)
		s.Set(keys[i], i, time.Hour)
	}

	b.ResetTimer()
	for i := range b.N {
		s.Get(keys[i%1000])
	}
}
