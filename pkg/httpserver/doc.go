// Package httpserver wraps net/http with context-driven graceful shutdown,
// env-tagged configuration and health-check handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, after in-flight requests finish or the
// shutdown timeout elapses. Errors wrap ErrStart or ErrShutdown.
package httpserver
