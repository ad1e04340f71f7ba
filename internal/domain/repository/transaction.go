package repository

import "context"

// TransactionManager runs one unit of import work atomically. An importer
// calls Execute once per row; returning an error from fn rolls the row back,
// which is also how a dry run discards its writes.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the open transaction.
type RepositoryFactory interface {
	NewProductRepository() ProductRepository
	NewCategoryRepository() CategoryRepository
	NewOrderRepository() OrderRepository
	NewHomepageSectionRepository() HomepageSectionRepository
}
