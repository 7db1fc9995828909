package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sourcefeed/migrations"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/mongo"
	"github.com/dmitrymomot/sourcefeed/pkg/pg"
	"github.com/dmitrymomot/sourcefeed/pkg/redis"
	"github.com/dmitrymomot/sourcefeed/pkg/requestid"
	"github.com/dmitrymomot/sourcefeed/svc/item"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

var errUnknownDriver = errors.New("app.unknown_driver")

type itemStore interface {
	item.Store
	item.Inserter
}

// stores bundles the configured storage backends with their readiness
// checks. close releases every connection that was opened.
type stores struct {
	sessions session.Store
	items    itemStore
	checks   []func(context.Context) error
	closers  []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

type storeOptions struct {
	migrate bool
}

func openStores(ctx context.Context, cfg Config, log *slog.Logger, opts storeOptions) (_ *stores, err error) {
	st := &stores{}
	defer func() {
		if err != nil {
			st.close()
		}
	}()

	var pool *pgxpool.Pool
	if cfg.usesPostgres() {
		pgCfg, err := loadPostgresConfig()
		if err != nil {
			return nil, err
		}
		pool, err = pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, pool.Close)
		st.checks = append(st.checks, pg.Healthcheck(pool))

		if opts.migrate {
			if err := pg.Migrate(ctx, pool, migrations.FS, pgCfg, log); err != nil {
				return nil, err
			}
		}
	}

	switch cfg.Session.Driver {
	case session.DriverMemory, "":
		st.sessions = session.NewMemoryStore()
	case session.DriverPostgres:
		st.sessions = session.NewPostgresStore(pool)
	case session.DriverRedis:
		redisCfg, err := loadRedisConfig()
		if err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, func() { _ = client.Close() })
		st.checks = append(st.checks, redis.Healthcheck(client))
		st.sessions = session.NewRedisStore(client, cfg.Session.RedisOptions()...)
	default:
		return nil, errors.Join(errUnknownDriver, fmt.Errorf("session store %q", cfg.Session.Driver))
	}

	switch cfg.ItemStore {
	case itemDriverMemory, "":
		st.items = item.NewMemoryStore()
	case itemDriverPostgres:
		st.items = item.NewPostgresStore(pool)
	case itemDriverMongo:
		mongoCfg, err := loadMongoConfig()
		if err != nil {
			return nil, err
		}
		client, err := mongo.New(ctx, mongoCfg)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, func() { _ = client.Disconnect(context.Background()) })
		st.checks = append(st.checks, mongo.Healthcheck(client))
		st.items = item.NewMongoStore(client.Database(mongoCfg.Database).Collection(cfg.MongoCollection))
	default:
		return nil, errors.Join(errUnknownDriver, fmt.Errorf("item store %q", cfg.ItemStore))
	}

	log.InfoContext(ctx, "stores ready",
		slog.String("session_store", cfg.Session.Driver),
		slog.String("item_store", cfg.ItemStore),
		logger.Component("app"),
	)
	return st, nil
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LogExtractor),
	)
}
