package repositories

type DbRepository struct{}

func NewDbRepository() *DbRepository {
	return &DbRepository{}
}
