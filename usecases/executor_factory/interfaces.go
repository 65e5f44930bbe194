package executor_factory

import (
	"context"

	"github.com/signflow/document-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error
}
