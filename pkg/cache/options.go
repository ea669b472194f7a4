package cache

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

type options struct {
	defaultTTL time.Duration
	clock      clock.Clock
	logger     *slog.Logger
}

func defaultOptions() *options {
	return &options{
		defaultTTL: DefaultTTL,
		clock:      clock.New(),
		logger:     slog.New(slog.DiscardHandler),
	}
}

// Option configures a Store or a Janitor.
type Option func(*options)

// WithDefaultTTL sets the TTL used by SetDefault.
func WithDefaultTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic("WithDefaultTTL: ttl must be > 0")
	}
	return func(o *options) { o.defaultTTL = ttl }
}

// WithClock replaces the wall clock, mainly for tests driven by clock.Mock.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger supplies a logger for eviction and sweep events. If nil, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
