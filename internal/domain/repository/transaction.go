package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	// Repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	JobRepo() JobRepository
	ApplicationRepo() ApplicationRepository
}
