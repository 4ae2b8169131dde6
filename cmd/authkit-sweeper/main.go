// Command authkit-sweeper applies the database migrations and periodically
// deletes expired sessions and verification sessions.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/authkit/db/migrations"
	"github.com/dmitrymomot/authkit/pkg/auth"
	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/pkg/redis"
	"github.com/dmitrymomot/authkit/pkg/secret"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/sweeper"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

const serviceName = "authkit-sweeper"

// Verification store backends.
const (
	storePostgres = "postgres"
	storeRedis    = "redis"
)

var errUnknownStore = errors.New("authkit-sweeper.unknown_verification_store")

type appConfig struct {
	Environment       environment.Environment `env:"APP_ENV" envDefault:"development"`
	VerificationStore string                  `env:"VERIFICATION_STORE" envDefault:"postgres"`
	JobTimeout        time.Duration           `env:"SWEEP_JOB_TIMEOUT" envDefault:"1m"`
	SkipMigrations    bool                    `env:"SKIP_MIGRATIONS" envDefault:"false"`
	HealthTimeout     time.Duration           `env:"HEALTHCHECK_TIMEOUT" envDefault:"5s"`
}

func (c appConfig) Validate() error {
	switch c.VerificationStore {
	case storePostgres, storeRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownStore, c.VerificationStore)
	}
}

type healthcheck struct {
	name  string
	check func(context.Context) error
}

// checkStores runs every check and stops at the first unreachable store.
func checkStores(ctx context.Context, timeout time.Duration, checks ...healthcheck) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for _, c := range checks {
		if err := c.check(ctx); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

func main() {
	once := flag.Bool("once", false, "sweep once and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *once); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, once bool) error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}
	log := logger.New(logger.WithEnvironment(app.Environment, serviceName))

	var authCfg auth.Config
	if err := config.Load(&authCfg); err != nil {
		return err
	}
	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	checks := []healthcheck{{name: "postgres", check: pg.Healthcheck(pool)}}

	if !app.SkipMigrations {
		if err := pg.MigrateFS(ctx, pool, migrations.FS, pgCfg, log); err != nil {
			return err
		}
	}

	hasher := secret.NewHasher(authCfg.SessionPepper)
	sessions := session.New(session.NewPostgresStore(pool), hasher,
		session.WithConfig(authCfg.Session),
		session.WithLogger(log),
	)

	var verificationStore verification.Store = verification.NewPostgresStore(pool)
	if app.VerificationStore == storeRedis {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		checks = append(checks, healthcheck{name: "redis", check: redis.Healthcheck(client)})
		verificationStore = verification.NewRedisStore(client, verification.WithKeyPrefix(redisCfg.KeyPrefix))
	}
	// SweepExpired covers every purpose of the store, so one manager is enough.
	verifications := verification.New(verification.PurposeEmailVerification, verificationStore, hasher,
		verification.WithConfig(authCfg.Verification),
		verification.WithLogger(log),
	)

	if err := checkStores(ctx, app.HealthTimeout, checks...); err != nil {
		return err
	}

	s := sweeper.New(
		sweeper.WithInterval(authCfg.Session.SweepInterval),
		sweeper.WithJobTimeout(app.JobTimeout),
		sweeper.WithLogger(log),
	)
	if err := s.Add("sessions", sessions.SweepExpired); err != nil {
		return err
	}
	if err := s.Add("verification_sessions", verifications.SweepExpired); err != nil {
		return err
	}

	if once {
		for _, res := range s.RunOnce(ctx) {
			if res.Err != nil {
				return res.Err
			}
			log.InfoContext(ctx, "swept", logger.Event(res.Name), logger.Count(res.Deleted))
		}
		return nil
	}

	log.InfoContext(ctx, "starting", slog.String("verification_store", app.VerificationStore))
	return s.Start(ctx)
}
