package commands

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrAssignFulfilmentCommandIsNotConstructed = errors.New(
	"AssignFulfilmentCommand must be created via NewAssignFulfilmentCommand constructor",
)

// AssignFulfilmentCommand represents a request to record that a warehouse
// fulfils a product for a store. All three legs must identify existing
// records; the handler verifies that and evaluates the fan-out limits.
type AssignFulfilmentCommand struct { //nolint:recvcheck //using for validation
	storeID               uuid.UUID
	productID             uuid.UUID
	warehouseBusinessUnit string

	guard guard.ConstructorGuard
}

// NewAssignFulfilmentCommand creates a command to assign a warehouse to a
// store and product pair. All field violations are aggregated and returned
// as a single error.
func NewAssignFulfilmentCommand(storeID uuid.UUID, productID uuid.UUID, warehouseBusinessUnit string) (AssignFulfilmentCommand, error) {
	command := AssignFulfilmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(storeID),
		command.setProductID(productID),
		command.setWarehouseBusinessUnit(warehouseBusinessUnit),
	); err != nil {
		return AssignFulfilmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignFulfilmentCommandIsNotConstructed if validation fails.
func (c AssignFulfilmentCommand) Validate() error {
	return c.guard.Validate(ErrAssignFulfilmentCommandIsNotConstructed)
}

// StoreID returns the identifier of the store to fulfil.
func (c AssignFulfilmentCommand) StoreID() uuid.UUID {
	return c.storeID
}

// ProductID returns the identifier of the product to fulfil.
func (c AssignFulfilmentCommand) ProductID() uuid.UUID {
	return c.productID
}

// WarehouseBusinessUnit returns the code of the fulfilling warehouse.
func (c AssignFulfilmentCommand) WarehouseBusinessUnit() string {
	return c.warehouseBusinessUnit
}

func (c *AssignFulfilmentCommand) setStoreID(storeID uuid.UUID) error {
	if storeID == uuid.Nil {
		return errs.NewValueIsRequiredError("storeID")
	}

	c.storeID = storeID
	return nil
}

func (c *AssignFulfilmentCommand) setProductID(productID uuid.UUID) error {
	if productID == uuid.Nil {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *AssignFulfilmentCommand) setWarehouseBusinessUnit(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("warehouseBusinessUnit")
	}

	c.warehouseBusinessUnit = code
	return nil
}
