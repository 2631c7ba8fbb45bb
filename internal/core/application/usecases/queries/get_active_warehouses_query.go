// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var ErrGetActiveWarehousesQueryIsNotConstructed = errors.New(
	"GetActiveWarehousesQuery must be created via NewGetActiveWarehousesQuery constructor",
)

// GetActiveWarehousesQuery retrieves the active warehouse fleet. Archived
// records never appear in the result.
//
// Example:
//
//	query := NewGetActiveWarehousesQuery()
//	handler := NewGetActiveWarehousesQueryHandler(db)
//
//	warehouses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve warehouses: %w", err)
//	}
type GetActiveWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveWarehousesQuery creates a query to retrieve all active
// warehouses. This is a parameterless query.
func NewGetActiveWarehousesQuery() GetActiveWarehousesQuery {
	return GetActiveWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWarehousesQueryIsNotConstructed)
}

// GetActiveWarehousesQueryResponse represents warehouse information in the
// read model.
type GetActiveWarehousesQueryResponse struct {
	BusinessUnitCode string
	Location         string
	Capacity         int
	Stock            int
}
