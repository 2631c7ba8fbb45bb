package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand represents a request to admit a new warehouse into
// the fulfilment network.
//
// Field-level validation (non-blank code and location, positive capacity,
// stock within capacity) happens at construction; the handler evaluates the
// rules that need current state: code uniqueness, location resolution, and
// the location's capacity and count ceilings.
//
// Example:
//
//	cmd, err := NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", 100, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse draft: %w", err)
//	}
//
//	handler := NewCreateWarehouseCommandHandler(uowFactory, locations)
//	created, err := handler.Handle(ctx, cmd)
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string
	location         string
	capacity         int
	stock            int

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to admit a new warehouse.
// All field violations are aggregated and returned as a single error.
func NewCreateWarehouseCommand(businessUnitCode string, location string, capacity int, stock int) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBusinessUnitCode(businessUnitCode),
		command.setLocation(location),
		command.setCapacity(capacity),
		command.setStock(stock, capacity),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWarehouseCommandIsNotConstructed if validation fails.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the code of the warehouse to admit.
func (c CreateWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

// Location returns the identifier of the hosting site.
func (c CreateWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the requested warehouse capacity.
func (c CreateWarehouseCommand) Capacity() int {
	return c.capacity
}

// Stock returns the initial stock of the warehouse.
func (c CreateWarehouseCommand) Stock() int {
	return c.stock
}

func (c *CreateWarehouseCommand) setBusinessUnitCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("businessUnitCode")
	}

	c.businessUnitCode = code
	return nil
}

func (c *CreateWarehouseCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *CreateWarehouseCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}

	c.capacity = capacity
	return nil
}

func (c *CreateWarehouseCommand) setStock(stock int, capacity int) error {
	if stock < 0 || stock > capacity {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, capacity)
	}

	c.stock = stock
	return nil
}
