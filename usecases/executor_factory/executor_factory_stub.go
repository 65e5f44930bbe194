package executor_factory

import (
	"github.com/signflow/document-backend/repositories"

	"github.com/pashagolub/pgxmock/v4"
)

// ExecutorFactoryStub runs executors and transactions against a pgxmock pool, so that
// tests can assert on the SQL statements and on begin/commit/rollback.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
	DbExecutorFactory
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock:              pool,
		DbExecutorFactory: NewDbExecutorFactory(repositories.NewExecutorGetter(pool)),
	}
}
