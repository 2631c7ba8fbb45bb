package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Every use case runs its validation reads and its writes inside one unit of
// work, so the two-step operations (most importantly the archive+create pair
// of a warehouse replacement) are observed together or not at all.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// WarehouseRepository returns a WarehouseRepository bound to the current
	// transaction.
	WarehouseRepository() WarehouseRepository

	// FulfilmentRepository returns a FulfilmentRepository bound to the
	// current transaction.
	FulfilmentRepository() FulfilmentRepository

	// StoreRepository returns a StoreRepository bound to the current
	// transaction.
	StoreRepository() StoreRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository
}
