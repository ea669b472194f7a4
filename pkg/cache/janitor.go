package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

// Sweeper is implemented by stores that can drop expired entries in bulk.
type Sweeper interface {
	CleanupExpired() int
}

// Janitor periodically sweeps expired entries so that entries nobody reads
// again stop counting toward the store's capacity.
type Janitor struct {
	sweeper  Sweeper
	interval time.Duration
	clock    clock.Clock
	log      *slog.Logger
}

// NewJanitor returns a janitor sweeping s every interval.
// It panics on a nil sweeper or a non-positive interval.
func NewJanitor(s Sweeper, interval time.Duration, opts ...Option) *Janitor {
	if s == nil {
		panic("NewJanitor: nil sweeper")
	}
	if interval <= 0 {
		panic("NewJanitor: interval must be > 0")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Janitor{
		sweeper:  s,
		interval: interval,
		clock:    o.clock,
		log:      o.logger,
	}
}

// Run blocks, sweeping on every tick until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	ticker := j.clock.Ticker(j.interval)
	defer ticker.Stop()

	j.log.DebugContext(ctx, "cache janitor started", slog.Duration("interval", j.interval))
	for {
		select {
		case <-ctx.Done():
			j.log.DebugContext(ctx, "cache janitor stopped")
			return
		case <-ticker.C:
			if n := j.sweeper.CleanupExpired(); n > 0 {
				j.log.DebugContext(ctx, "expired cache entries swept", slog.Int("count", n))
			}
		}
	}
}
