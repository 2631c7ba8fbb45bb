// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfilment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers declare the narrowest unit of work they need, so tests can fake
// exactly the repositories a use case touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WarehouseRepoFactory provides access to the warehouse repository
	// within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// FulfilmentRepoFactory provides access to the assignment repository
	// within a transaction.
	FulfilmentRepoFactory interface {
		FulfilmentRepository() ports.FulfilmentRepository
	}

	// StoreRepoFactory provides access to the store repository within a
	// transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// ProductRepoFactory provides access to the product repository within a
	// transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// WarehouseUoW manages transactions for warehouse lifecycle operations.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// StoreUoW manages transactions for store operations.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	// StoreUoWFactory creates store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// ProductUoW manages transactions for product operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// AssignmentUoW manages transactions for fulfilment assignment. The
	// assignment use case reads stores, products, and warehouses to verify
	// the triple resolves, and reads and writes assignment records.
	AssignmentUoW interface {
		TxManager
		FulfilmentRepoFactory
		StoreRepoFactory
		ProductRepoFactory
		WarehouseRepoFactory
	}

	// AssignmentUoWFactory creates assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
