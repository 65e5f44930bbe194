package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPostgresConnectionPool(ctx context.Context, connectionString string, maxConnections int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}
	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	if maxConnections <= 0 {
		maxConnections = DEFAULT_MAX_CONNECTIONS
	}
	cfg.MaxConns = int32(maxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err = retry.Do(
		func() error { return pool.Ping(pingCtx) },
		retry.Context(pingCtx),
		retry.Attempts(3),
		retry.LastErrorOnly(true),
		retry.Delay(100*time.Millisecond),
	)
	if err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "unable to ping database")
	}
	return pool, nil
}
