package commands

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var ErrArchiveWarehouseCommandIsNotConstructed = errors.New(
	"ArchiveWarehouseCommand must be created via NewArchiveWarehouseCommand constructor",
)

// ArchiveWarehouseCommand represents a request to retire the warehouse under
// a business unit code. Archiving an already archived warehouse is a silent
// no-op; the handler implements that idempotence.
type ArchiveWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string

	guard guard.ConstructorGuard
}

// NewArchiveWarehouseCommand creates a command to archive the warehouse
// under the given business unit code.
func NewArchiveWarehouseCommand(businessUnitCode string) (ArchiveWarehouseCommand, error) {
	command := ArchiveWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBusinessUnitCode(businessUnitCode); err != nil {
		return ArchiveWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrArchiveWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the code of the warehouse to archive.
func (c ArchiveWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

func (c *ArchiveWarehouseCommand) setBusinessUnitCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("businessUnitCode")
	}

	c.businessUnitCode = code
	return nil
}
