package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var ErrReplaceWarehouseCommandIsNotConstructed = errors.New(
	"ReplaceWarehouseCommand must be created via NewReplaceWarehouseCommand constructor",
)

// ReplaceWarehouseCommand represents a request to retire the active
// warehouse under a business unit code and admit a replacement under the
// same code, possibly at a different location and with a different capacity.
//
// Field-level validation happens at construction; the handler evaluates the
// replacement-specific rules against the warehouse being retired: stock
// continuity, capacity sufficiency, and feasibility at the destination.
type ReplaceWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string
	location         string
	capacity         int
	stock            int

	guard guard.ConstructorGuard
}

// NewReplaceWarehouseCommand creates a command to replace the warehouse
// under the given business unit code with the supplied draft.
func NewReplaceWarehouseCommand(businessUnitCode string, location string, capacity int, stock int) (ReplaceWarehouseCommand, error) {
	command := ReplaceWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBusinessUnitCode(businessUnitCode),
		command.setLocation(location),
		command.setCapacity(capacity),
		command.setStock(stock, capacity),
	); err != nil {
		return ReplaceWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReplaceWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the code whose active warehouse is replaced.
func (c ReplaceWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

// Location returns the destination site of the replacement warehouse.
func (c ReplaceWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the capacity of the replacement warehouse.
func (c ReplaceWarehouseCommand) Capacity() int {
	return c.capacity
}

// Stock returns the stock of the replacement warehouse. It must match the
// stock of the warehouse being retired; the handler enforces that.
func (c ReplaceWarehouseCommand) Stock() int {
	return c.stock
}

func (c *ReplaceWarehouseCommand) setBusinessUnitCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("businessUnitCode")
	}

	c.businessUnitCode = code
	return nil
}

func (c *ReplaceWarehouseCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *ReplaceWarehouseCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}

	c.capacity = capacity
	return nil
}

func (c *ReplaceWarehouseCommand) setStock(stock int, capacity int) error {
	if stock < 0 || stock > capacity {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, capacity)
	}

	c.stock = stock
	return nil
}
