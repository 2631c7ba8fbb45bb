package commands

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateStoreCommandIsNotConstructed = errors.New(
	"UpdateStoreCommand must be created via NewUpdateStoreCommand constructor",
)

// UpdateStoreCommand represents a request to change the name and stock level
// of an existing store.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID                 uuid.UUID
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommand creates a command to update a store. All field
// violations are aggregated and returned as a single error.
func NewUpdateStoreCommand(storeID uuid.UUID, name string, quantityProductsInStock int) (UpdateStoreCommand, error) {
	command := UpdateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(storeID),
		command.setName(name),
		command.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return UpdateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

// StoreID returns the identifier of the store to update.
func (c UpdateStoreCommand) StoreID() uuid.UUID {
	return c.storeID
}

// Name returns the new display name of the store.
func (c UpdateStoreCommand) Name() string {
	return c.name
}

// QuantityProductsInStock returns the new stock level of the store.
func (c UpdateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}

func (c *UpdateStoreCommand) setStoreID(storeID uuid.UUID) error {
	if storeID == uuid.Nil {
		return errs.NewValueIsRequiredError("storeID")
	}

	c.storeID = storeID
	return nil
}

func (c *UpdateStoreCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateStoreCommand) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantityProductsInStock")
	}

	c.quantityProductsInStock = quantity
	return nil
}
