package pg_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	unique := &pgconn.PgError{Code: "23505"}
	foreign := &pgconn.PgError{Code: "23503"}

	assert.True(t, pg.IsNotFoundError(fmt.Errorf("query: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(nil))
	assert.True(t, pg.IsTxClosedError(pgx.ErrTxClosed))

	assert.True(t, pg.IsDuplicateKeyError(fmt.Errorf("insert: %w", unique)))
	assert.False(t, pg.IsDuplicateKeyError(foreign))
	assert.False(t, pg.IsDuplicateKeyError(nil))

	assert.True(t, pg.IsForeignKeyViolationError(foreign))
	assert.False(t, pg.IsForeignKeyViolationError(errors.New("plain")))
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ok := pg.Healthcheck(pingerFunc(func(context.Context) error { return nil }))
	assert.NoError(t, ok(context.Background()))

	down := pg.Healthcheck(pingerFunc(func(context.Context) error { return errors.New("refused") }))
	assert.ErrorIs(t, down(context.Background()), pg.ErrHealthcheckFailed)
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://user@host:notaport/db"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestMigrate_Paths(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	err := pg.Migrate(ctx, nil, pg.Config{}, nil)
	assert.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)

	err = pg.Migrate(ctx, nil, pg.Config{MigrationsPath: t.TempDir() + "/missing"}, nil)
	assert.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)

	fsys := fstest.MapFS{"migrations/001_init.sql": &fstest.MapFile{Data: []byte("-- +goose Up\n")}}
	err = pg.MigrateFS(ctx, nil, fsys, pg.Config{MigrationsPath: "other"}, nil)
	assert.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)

	err = pg.MigrateFS(ctx, nil, fsys, pg.Config{}, nil)
	assert.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)
}
