package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Only the repositories that take part in atomic settlement/transition work
// are exposed here; configuration and account reads tolerate stale data and
// stay outside the transaction.
type RepositoryFactory interface {
	// NewOrderRepository creates an order repository bound to the transaction.
	NewOrderRepository() OrderRepository

	// NewCommissionRepository creates a commission repository bound to the
	// transaction.
	NewCommissionRepository() CommissionRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. The function receives a factory producing transaction-bound
// repositories; returning an error rolls the transaction back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
