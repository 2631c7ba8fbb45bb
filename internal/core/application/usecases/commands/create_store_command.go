package commands

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request to register a new store.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a store. All field
// violations are aggregated and returned as a single error.
func NewCreateStoreCommand(name string, quantityProductsInStock int) (CreateStoreCommand, error) {
	command := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// Name returns the display name of the store to register.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// QuantityProductsInStock returns the reported stock level of the store.
func (c CreateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}

func (c *CreateStoreCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantityProductsInStock")
	}

	c.quantityProductsInStock = quantity
	return nil
}
