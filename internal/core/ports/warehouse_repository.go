// Package ports defines the repository and gateway interfaces of the
// fulfilment core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// aggregates. Lookups distinguish between active records (the working set of
// every capacity and count calculation) and the full history including
// archived records (the duplicate-code guard at creation time).
type WarehouseRepository interface {
	// Add persists a new warehouse record.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update overwrites the active record carrying the aggregate's business
	// unit code. Archiving goes through Update: the aggregate's archive
	// timestamp is persisted along with the rest of its state.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// GetActiveByBusinessUnitCode retrieves the active warehouse under the
	// code. Returns an ObjectNotFoundError when no active record exists;
	// archived records are invisible to this lookup.
	GetActiveByBusinessUnitCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error)

	// ExistsWithBusinessUnitCode reports whether any record, active or
	// archived, carries the code. Creation rejects a code that was ever
	// used; only Replace may re-admit a code, and it does so atomically.
	ExistsWithBusinessUnitCode(ctx context.Context, businessUnitCode string) (bool, error)

	// GetActiveByLocation retrieves all active warehouses hosted at the
	// location, the working set for feasibility checks.
	GetActiveByLocation(ctx context.Context, location string) ([]*warehouse.Warehouse, error)

	// GetAllActive retrieves every active warehouse.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
}
