package services

import (
	"fmt"

	"fulfilment/internal/core/domain/model/fulfilment"
	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
)

// Fan-out limits on the store/product/warehouse assignment graph.
const (
	// MaxWarehousesPerStoreProduct caps how many different warehouses may
	// fulfil one product for one store.
	MaxWarehousesPerStoreProduct = 2

	// MaxWarehousesPerStore caps how many different warehouses may fulfil
	// one store across all products.
	MaxWarehousesPerStore = 3

	// MaxProductTypesPerWarehouse caps how many different product types one
	// warehouse may store.
	MaxProductTypesPerWarehouse = 5
)

// AssignmentPolicy is a domain service that evaluates the fan-out limits for
// a proposed (store, product, warehouse) assignment against the current set
// of assignments.
//
// Each check counts distinct counterparts among existing assignments,
// exempting the counterpart being assigned: a warehouse or product already
// present in the set never counts against its own limit, so re-assigning
// within an established link can never be rejected by cardinality.
//
// The checks run in a fixed order (store+product, then store, then
// warehouse), so the reported reason is deterministic when several limits
// are exceeded at once.
type AssignmentPolicy struct{}

// NewAssignmentPolicy creates a new AssignmentPolicy instance.
func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// CanAssign decides whether the candidate assignment is admissible.
//
// Parameters:
//   - candidate: the assignment about to be created (must be valid)
//   - forStoreAndProduct: existing assignments sharing the candidate's store
//     and product
//   - forStore: existing assignments sharing the candidate's store
//   - forWarehouse: existing assignments sharing the candidate's warehouse
//
// Returns a business rule violation naming the exceeded limit, or nil when
// all three limits hold.
func (p AssignmentPolicy) CanAssign(
	candidate *fulfilment.Assignment,
	forStoreAndProduct []*fulfilment.Assignment,
	forStore []*fulfilment.Assignment,
	forWarehouse []*fulfilment.Assignment,
) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	if otherWarehouses(forStoreAndProduct, candidate.WarehouseBusinessUnit()) >= MaxWarehousesPerStoreProduct {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"a product can be fulfilled by at most %d warehouses per store", MaxWarehousesPerStoreProduct,
		))
	}

	if otherWarehouses(forStore, candidate.WarehouseBusinessUnit()) >= MaxWarehousesPerStore {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"a store can be fulfilled by at most %d different warehouses", MaxWarehousesPerStore,
		))
	}

	if otherProducts(forWarehouse, candidate.ProductID()) >= MaxProductTypesPerWarehouse {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"a warehouse can store at most %d different product types", MaxProductTypesPerWarehouse,
		))
	}

	return nil
}

// otherWarehouses counts distinct warehouse identities among the
// assignments, leaving out the warehouse being assigned.
func otherWarehouses(assignments []*fulfilment.Assignment, exempt string) int {
	seen := make(map[string]struct{})
	for _, a := range assignments {
		if a == nil || a.WarehouseBusinessUnit() == exempt {
			continue
		}
		seen[a.WarehouseBusinessUnit()] = struct{}{}
	}
	return len(seen)
}

// otherProducts counts distinct product identities among the assignments,
// leaving out the product being assigned.
func otherProducts(assignments []*fulfilment.Assignment, exempt uuid.UUID) int {
	seen := make(map[uuid.UUID]struct{})
	for _, a := range assignments {
		if a == nil || a.ProductID() == exempt {
			continue
		}
		seen[a.ProductID()] = struct{}{}
	}
	return len(seen)
}
