// Package pg connects to PostgreSQL through a pgx pool and applies goose
// migrations. The session and verification Postgres stores run on the pool
// it returns; their tables are created by the migrations in db/migrations.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.MigrateFS(ctx, pool, migrations.FS, cfg, log); err != nil {
//		return err
//	}
//
// The Is*Error helpers classify pgx and PostgreSQL errors.
package pg
