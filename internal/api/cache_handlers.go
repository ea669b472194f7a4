package api

import (
	"log/slog"
	"net/http"

	"github.com/CategoryLeaders/productlobby-sub011/pkg/cache"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/logger"
)

type cacheHandlers struct {
	cache CacheAdmin
	log   *slog.Logger
}

type cacheStats struct {
	cache.Stats
	HitRatio float64 `json:"hit_ratio"`
}

func (h *cacheHandlers) stats(w http.ResponseWriter, r *http.Request) {
	s := h.cache.Stats()
	writeJSON(w, http.StatusOK, cacheStats{Stats: s, HitRatio: s.HitRatio()})
}

// invalidate removes every key under ?prefix=. Without a prefix the whole
// cache is cleared, counters included.
func (h *cacheHandlers) invalidate(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		removed := h.cache.Clear()
		h.log.InfoContext(r.Context(), "cache cleared", logger.Count(removed))
		writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
		return
	}

	removed := h.cache.InvalidatePrefix(prefix)
	h.log.InfoContext(r.Context(), "cache prefix invalidated", logger.Prefix(prefix), logger.Count(removed))
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *cacheHandlers) cleanup(w http.ResponseWriter, r *http.Request) {
	removed := h.cache.CleanupExpired()
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}
