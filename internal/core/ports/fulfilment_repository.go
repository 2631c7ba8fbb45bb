package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/fulfilment"

	"github.com/google/uuid"
)

// FulfilmentRepository defines the persistence contract for assignment
// records. The grouped lookups feed the fan-out policy with the current
// assignment sets it evaluates limits against.
type FulfilmentRepository interface {
	// Add persists a new assignment record.
	Add(ctx context.Context, aggregate *fulfilment.Assignment) error

	// FindExact retrieves the assignment for the exact triple, or nil when
	// no such assignment exists. Used for idempotent duplicate handling,
	// so absence is not an error.
	FindExact(ctx context.Context, storeID uuid.UUID, productID uuid.UUID, warehouseBusinessUnit string) (*fulfilment.Assignment, error)

	// GetByStoreAndProduct retrieves assignments sharing the store and product.
	GetByStoreAndProduct(ctx context.Context, storeID uuid.UUID, productID uuid.UUID) ([]*fulfilment.Assignment, error)

	// GetByStore retrieves assignments sharing the store, any product.
	GetByStore(ctx context.Context, storeID uuid.UUID) ([]*fulfilment.Assignment, error)

	// GetByWarehouse retrieves assignments sharing the warehouse, any store.
	GetByWarehouse(ctx context.Context, warehouseBusinessUnit string) ([]*fulfilment.Assignment, error)
}
