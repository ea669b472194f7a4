// Package pg bootstraps the PostgreSQL connection pool that backs the
// service's source of truth.
//
// Config is populated from PG_* environment variables. Connect opens a
// pgx/v5 pool with retry, Migrate applies embedded goose migrations and
// Healthcheck adapts the pool to a readiness check.
//
//	pool, err := pg.Connect(ctx, cfg.PG)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, db.Migrations, db.MigrationsDir, cfg.PG, log); err != nil {
//		return err
//	}
package pg
