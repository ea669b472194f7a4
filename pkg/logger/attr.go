package logger

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// CacheKey names the key an operation touched.
func CacheKey(key string) slog.Attr {
	return slog.String("cache_key", key)
}

// Prefix names the key prefix of an invalidation.
func Prefix(prefix string) slog.Attr {
	return slog.String("prefix", prefix)
}

// Hit reports whether a cache lookup found a live entry.
func Hit(hit bool) slog.Attr {
	return slog.Bool("cache_hit", hit)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func CampaignID(id int64) slog.Attr {
	return slog.Int64("campaign_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
