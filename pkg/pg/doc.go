// Package pg bootstraps PostgreSQL access over pgx/v5: a retrying pool
// constructor, goose migrations read from an fs.FS, a readiness check and
// error classification helpers.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil {
//		return err
//	}
package pg
