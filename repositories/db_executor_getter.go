package repositories

import (
	"context"

	"github.com/signflow/document-backend/models"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type TransactionOrPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Executor interface {
	TransactionOrPool
}

// executor bound to an open transaction
type Transaction interface {
	Executor
}

// satisfied by *pgxpool.Pool and by pgxmock pools
type ConnectionPool interface {
	TransactionOrPool
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ExecutorGetter struct {
	connectionPool ConnectionPool
}

func NewExecutorGetter(pool ConnectionPool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

// Transaction runs fn in a single database transaction. The transaction is committed if fn
// returns nil and rolled back otherwise.
func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Transaction) error) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(&PgTx{tx: tx})
	})

	// helper: The callback can return ErrIgnoreRollBackError
	// to explicitly specify that the error should be ignored.
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return errors.Wrap(err, "Error executing transaction")
}

func (g ExecutorGetter) GetExecutor() Executor {
	return PgExecutor{
		exec: g.connectionPool,
	}
}
