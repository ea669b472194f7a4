package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/CategoryLeaders/productlobby-sub011/internal/api"
	"github.com/CategoryLeaders/productlobby-sub011/internal/campaign"
	"github.com/CategoryLeaders/productlobby-sub011/internal/db"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/cache"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/config"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/environment"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/httpserver"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/logger"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/pg"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/requestid"
)

const serviceName = "productlobby"

type appConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	StatsTTL        time.Duration `env:"CAMPAIGN_STATS_TTL" envDefault:"30s"`
	CommentsTTL     time.Duration `env:"CAMPAIGN_COMMENTS_TTL" envDefault:"10s"`
	MetricsDisabled bool          `env:"METRICS_DISABLED" envDefault:"false"`

	Log   logger.Config
	HTTP  httpserver.Config
	PG    pg.Config
	Cache cache.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	ctx = environment.WithContext(ctx, env)
	log := newLogger(env, cfg.Log)
	logger.SetAsDefault(log)

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, db.Migrations, db.MigrationsDir, cfg.PG, log); err != nil {
		return err
	}

	// One store per process; every consumer shares it.
	store := cache.NewFromConfig[any](cfg.Cache, log.With(logger.Component("cache")))

	campaigns := campaign.NewService(
		campaign.NewPGRepository(pool),
		store,
		campaign.WithStatsTTL(cfg.StatsTTL),
		campaign.WithCommentsTTL(cfg.CommentsTTL),
		campaign.WithLogger(log),
	)

	var gatherer prometheus.Gatherer
	if !cfg.MetricsDisabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			cache.NewCollector(serviceName, "app", store),
		)
		gatherer = reg
	}

	router := api.NewRouter(api.Options{
		Campaigns:   campaigns,
		Cache:       store,
		Gatherer:    gatherer,
		Environment: env,
		Logger:      log,
		ReadyChecks: []func(context.Context) error{pg.Healthcheck(pool)},
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Cache.CleanupInterval > 0 {
		janitor := cache.NewJanitor(store, cfg.Cache.CleanupInterval, cache.WithLogger(log.With(logger.Component("cache"))))
		g.Go(func() error {
			janitor.Run(ctx)
			return nil
		})
	}
	g.Go(func() error {
		return srv.Run(ctx, router)
	})

	log.InfoContext(ctx, "service starting",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Int("cache_max_size", store.MaxSize()),
		slog.Duration("cache_default_ttl", store.DefaultTTL()),
	)
	return g.Wait()
}

// newLogger builds the process logger. Records logged with a request context
// carry request_id, and every context derived from run's carries env.
func newLogger(env environment.Environment, cfg logger.Config, opts ...logger.Option) *slog.Logger {
	return logger.New(append([]logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithConfig(cfg),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}, opts...)...)
}
