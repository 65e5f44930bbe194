package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/signflow/document-backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
}

func (e *ExecutorFactory) NewExecutor() repositories.Executor {
	args := e.Called()
	return args.Get(0).(repositories.Executor)
}

// TransactionFactory runs the callback with TxMock, then returns the mocked error.
// An error from the callback is returned as is, as a real transaction would after its rollback.
type TransactionFactory struct {
	mock.Mock
	TxMock *Executor
}

func (t *TransactionFactory) Transaction(ctx context.Context, fn func(exec repositories.Executor) error) error {
	args := t.Called(ctx, fn)
	err := fn(t.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}
