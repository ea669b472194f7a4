// Package api exposes campaign reads and cache administration over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CategoryLeaders/productlobby-sub011/internal/campaign"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/cache"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/environment"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/httpserver"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/logger"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/requestid"
)

// CacheAdmin is the administrative surface of the process cache.
type CacheAdmin interface {
	Stats() cache.Stats
	InvalidatePrefix(prefix string) int
	Clear() int
	CleanupExpired() int
}

// Options wires the router's collaborators. Nil Gatherer disables /metrics.
type Options struct {
	Campaigns   *campaign.Service
	Cache       CacheAdmin
	Gatherer    prometheus.Gatherer
	Environment environment.Environment
	Logger      *slog.Logger
	ReadyChecks []func(context.Context) error
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(opts.Environment),
		middleware.RealIP,
		requestLogger(log),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, opts.ReadyChecks...))
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	c := &campaignHandlers{svc: opts.Campaigns, log: log}
	r.Route("/campaigns/{id}", func(r chi.Router) {
		r.Get("/stats", c.stats)
		r.Get("/comments", c.comments)
		r.Post("/invalidate", c.invalidate)
	})

	a := &cacheHandlers{cache: opts.Cache, log: log}
	r.Route("/admin/cache", func(r chi.Router) {
		r.Get("/stats", a.stats)
		r.Delete("/", a.invalidate)
		r.Post("/cleanup", a.cleanup)
	})

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.DebugContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
