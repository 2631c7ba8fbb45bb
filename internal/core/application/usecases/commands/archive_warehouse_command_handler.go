package commands

import (
	"context"
	"errors"
	"time"

	"fulfilment/internal/pkg/errs"
)

// ArchiveWarehouseCommandHandler handles the business logic for retiring an
// active warehouse. Archiving a warehouse whose code is already archived is
// a silent no-op; an unknown code is an error.
type ArchiveWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewArchiveWarehouseCommandHandler creates a handler for warehouse retirement.
func NewArchiveWarehouseCommandHandler(uowFactory WarehouseUoWFactory) ArchiveWarehouseCommandHandler {
	return ArchiveWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archive command. The already-archived case returns
// before the transaction writes anything, so repeated archives stay
// observable as a single retirement.
func (h *ArchiveWarehouseCommandHandler) Handle(ctx context.Context, cmd ArchiveWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()

	existing, err := warehouseRepo.GetActiveByBusinessUnitCode(ctx, cmd.BusinessUnitCode())
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			exists, existsErr := warehouseRepo.ExistsWithBusinessUnitCode(ctx, cmd.BusinessUnitCode())
			if existsErr != nil {
				return existsErr
			}
			if exists {
				// Already archived.
				return nil
			}
		}

		return err
	}

	existing.Archive(time.Now().UTC())

	if err = warehouseRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
