package executor_factory

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories"
)

func TestTransactionReturnValue_Commit(t *testing.T) {
	stub := NewExecutorFactoryStub()
	stub.Mock.ExpectBegin()
	stub.Mock.ExpectCommit()
	// pgx.BeginFunc always rolls back in a defer
	stub.Mock.ExpectRollback()

	value, err := TransactionReturnValue(context.Background(), stub, func(tx repositories.Executor) (int, error) {
		return 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, value)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestTransactionReturnValue_Rollback(t *testing.T) {
	stub := NewExecutorFactoryStub()
	stub.Mock.ExpectBegin()
	stub.Mock.ExpectRollback()
	stub.Mock.ExpectRollback()
	failure := errors.New("failure")

	_, err := TransactionReturnValue(context.Background(), stub, func(tx repositories.Executor) (int, error) {
		return 0, failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestTransactionReturnValue_IgnoredRollback(t *testing.T) {
	stub := NewExecutorFactoryStub()
	stub.Mock.ExpectBegin()
	stub.Mock.ExpectRollback()
	stub.Mock.ExpectRollback()

	err := stub.Transaction(context.Background(), func(tx repositories.Executor) error {
		return models.ErrIgnoreRollBackError
	})

	assert.NoError(t, err)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}
