package usecases

import (
	"github.com/signflow/document-backend/repositories"
	"github.com/signflow/document-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
}

func NewUsecases(repositories repositories.Repositories) Usecases {
	return Usecases{
		Repositories: repositories,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}
