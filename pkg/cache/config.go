package cache

import (
	"log/slog"
	"time"
)

type Config struct {
	MaxSize         int           `env:"CACHE_MAX_SIZE" envDefault:"1000"`       // MaxSize is the maximum number of entries held.
	DefaultTTL      time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"60s"`     // DefaultTTL applies when a caller does not pass a TTL.
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"1m"` // CleanupInterval is the janitor tick; 0 disables proactive sweeps.
}

// NewFromConfig creates a Store from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig[V any](cfg Config, log *slog.Logger, opts ...Option) *Store[V] {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.DefaultTTL > 0 {
		configOpts = append(configOpts, WithDefaultTTL(cfg.DefaultTTL))
	}
	configOpts = append(configOpts, WithLogger(log))
	configOpts = append(configOpts, opts...)

	return New[V](maxSize, configOpts...)
}
