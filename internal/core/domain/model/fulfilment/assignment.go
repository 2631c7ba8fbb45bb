// Package fulfilment provides the Assignment entity: the record that a given
// product, at a given store, is fulfilled from a given warehouse.
//
// An assignment is immutable once created. Its business identity is the
// (store, product, warehouse) triple; at most one assignment exists per
// triple, which the assignment use case enforces through an idempotent
// duplicate check and the database backstops with a unique constraint.
// The warehouse leg references the business unit code, the identifier that
// survives warehouse replacement.
package fulfilment

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment constructor",
)

// Assignment records that a product at a store is fulfilled from a warehouse.
type Assignment struct {
	id                    uuid.UUID
	storeID               uuid.UUID
	productID             uuid.UUID
	warehouseBusinessUnit string

	isConstructed bool
}

// NewAssignment creates an assignment linking the three identities.
// All three legs of the triple are required.
func NewAssignment(id uuid.UUID, storeID uuid.UUID, productID uuid.UUID, warehouseBusinessUnit string) (*Assignment, error) {
	a := &Assignment{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setStoreID(storeID),
		a.setProductID(productID),
		a.setWarehouseBusinessUnit(warehouseBusinessUnit),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistent storage.
func RestoreAssignment(id uuid.UUID, storeID uuid.UUID, productID uuid.UUID, warehouseBusinessUnit string) (*Assignment, error) {
	return NewAssignment(id, storeID, productID, warehouseBusinessUnit)
}

// Validate ensures the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment record identity.
func (a *Assignment) ID() uuid.UUID {
	return a.id
}

// StoreID returns the store leg of the triple.
func (a *Assignment) StoreID() uuid.UUID {
	return a.storeID
}

// ProductID returns the product leg of the triple.
func (a *Assignment) ProductID() uuid.UUID {
	return a.productID
}

// WarehouseBusinessUnit returns the warehouse leg of the triple: the
// business unit code of the fulfilling warehouse.
func (a *Assignment) WarehouseBusinessUnit() string {
	return a.warehouseBusinessUnit
}

// Matches reports whether this assignment covers the exact triple.
func (a *Assignment) Matches(storeID uuid.UUID, productID uuid.UUID, warehouseBusinessUnit string) bool {
	return a.storeID == storeID &&
		a.productID == productID &&
		a.warehouseBusinessUnit == warehouseBusinessUnit
}

func (a *Assignment) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("id")
	}

	a.id = id
	return nil
}

func (a *Assignment) setStoreID(storeID uuid.UUID) error {
	if storeID == uuid.Nil {
		return errs.NewValueIsRequiredError("storeID")
	}

	a.storeID = storeID
	return nil
}

func (a *Assignment) setProductID(productID uuid.UUID) error {
	if productID == uuid.Nil {
		return errs.NewValueIsRequiredError("productID")
	}

	a.productID = productID
	return nil
}

func (a *Assignment) setWarehouseBusinessUnit(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("warehouseBusinessUnit")
	}

	a.warehouseBusinessUnit = code
	return nil
}
