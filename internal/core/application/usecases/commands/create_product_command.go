package commands

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product type.
// The description is optional.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product type. All
// field violations are aggregated and returned as a single error.
func NewCreateProductCommand(name string, description string, stock int) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDescription(description),
		command.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the display name of the product to register.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional free-form description of the product.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Stock returns the reported stock level of the product.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setDescription(description string) error {
	c.description = description
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
