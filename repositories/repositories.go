package repositories

type Repositories struct {
	ExecutorGetter ExecutorGetter
	DbRepository   *DbRepository
}

func NewRepositories(pool ConnectionPool) Repositories {
	return Repositories{
		ExecutorGetter: NewExecutorGetter(pool),
		DbRepository:   NewDbRepository(),
	}
}
