// Package postgres stores imported records with GORM. Production runs on
// PostgreSQL; tests run the same repositories on SQLite.
package postgres

import (
	"context"

	"megaskyshop/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil. An error from fn is returned
// unchanged after the rollback so callers can match their own sentinels;
// begin and commit failures are classified like any other write failure.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return toPersistenceError(err, "transaction")
	}
}

// txRepositories binds every repository to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(r.tx)
}

func (r txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}

func (r txRepositories) NewHomepageSectionRepository() repository.HomepageSectionRepository {
	return NewHomepageSectionRepository(r.tx)
}
