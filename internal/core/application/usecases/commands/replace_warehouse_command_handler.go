package commands

import (
	"context"
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// ReplaceWarehouseCommandHandler handles the atomic retire-and-admit
// transition of a warehouse replacement.
//
// Replacement-specific rules, evaluated against the warehouse being retired:
//   - stock continuity: the replacement carries exactly the retired
//     warehouse's stock, no stock appears or vanishes
//   - capacity sufficiency: the replacement's capacity accommodates that
//     stock (guarded explicitly against the old stock, independent of the
//     draft's own stock-within-capacity check)
//   - destination feasibility: the location ceilings are evaluated as if
//     the retired warehouse were already gone, so moving within a location
//     never counts the warehouse against itself
//
// Archive of the old record and admission of the new one run inside one
// transaction; both effects are observed together or not at all.
type ReplaceWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	locations  ports.LocationsProvider
}

// NewReplaceWarehouseCommandHandler creates a handler for warehouse
// replacement.
func NewReplaceWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	locations ports.LocationsProvider,
) ReplaceWarehouseCommandHandler {
	return ReplaceWarehouseCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
	}
}

// Handle processes the warehouse replacement command.
// Returns the admitted replacement warehouse on success.
func (h *ReplaceWarehouseCommandHandler) Handle(ctx context.Context, cmd ReplaceWarehouseCommand) (*warehouse.Warehouse, error) {
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

	existing, err := warehouseRepo.GetActiveByBusinessUnitCode(ctx, cmd.BusinessUnitCode())
	if err != nil {
		return nil, err
	}

	loc, err := h.locations.Resolve(ctx, cmd.Location())
	if err != nil {
		return nil, err
	}

	if cmd.Stock() != existing.Stock() {
		return nil, errs.NewBusinessRuleViolationError(
			"new warehouse stock must match existing warehouse stock",
		)
	}

	if cmd.Capacity() < existing.Stock() {
		return nil, errs.NewBusinessRuleViolationError(
			"new warehouse capacity must accommodate the stock of the warehouse being replaced",
		)
	}

	atLocation, err := warehouseRepo.GetActiveByLocation(ctx, cmd.Location())
	if err != nil {
		return nil, err
	}

	// Feasibility is computed as if the existing warehouse were already
	// archived, so it never counts against its own replacement.
	count := 0
	usedCapacity := 0
	for _, w := range atLocation {
		if w.IsEqual(existing) {
			continue
		}
		count++
		usedCapacity += w.Capacity()
	}

	if err = loc.CanAccommodate(count, usedCapacity, cmd.Capacity()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing.Archive(now)
	if err = warehouseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	replacement, err := warehouse.NewWarehouse(
		cmd.BusinessUnitCode(),
		cmd.Location(),
		cmd.Capacity(),
		cmd.Stock(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = warehouseRepo.Add(ctx, replacement); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return replacement, nil
}
