package commands

import (
	"context"
	"fmt"
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// CreateWarehouseCommandHandler handles the business logic for admitting a
// new warehouse: code uniqueness, location resolution, and the hosting
// site's capacity and count ceilings.
//
// The duplicate-code guard deliberately checks all records, archived ones
// included: a business unit code is retired permanently once used, and only
// a replace operation may re-admit it.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	locations  ports.LocationsProvider
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse admission.
// Requires a WarehouseUoWFactory for transactional persistence and the
// locations catalog for resolving the hosting site.
func NewCreateWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	locations ports.LocationsProvider,
) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
	}
}

// Handle processes the warehouse creation command. All validation reads and
// the write run inside one unit-of-work transaction; a rejected command
// leaves no trace. Returns the persisted warehouse on success.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) (*warehouse.Warehouse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()

	exists, err := warehouseRepo.ExistsWithBusinessUnitCode(ctx, cmd.BusinessUnitCode())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"warehouse with business unit code already exists: %s", cmd.BusinessUnitCode(),
		))
	}

	loc, err := h.locations.Resolve(ctx, cmd.Location())
	if err != nil {
		return nil, err
	}

	atLocation, err := warehouseRepo.GetActiveByLocation(ctx, cmd.Location())
	if err != nil {
		return nil, err
	}

	usedCapacity := 0
	for _, w := range atLocation {
		usedCapacity += w.Capacity()
	}

	if err = loc.CanAccommodate(len(atLocation), usedCapacity, cmd.Capacity()); err != nil {
		return nil, err
	}

	aggregate, err := warehouse.NewWarehouse(
		cmd.BusinessUnitCode(),
		cmd.Location(),
		cmd.Capacity(),
		cmd.Stock(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = warehouseRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
