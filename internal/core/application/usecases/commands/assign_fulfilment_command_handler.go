package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/fulfilment"
	"fulfilment/internal/core/domain/services"

	"github.com/google/uuid"
)

// AssignFulfilmentCommandHandler handles the business logic for recording a
// fulfilment assignment: the three legs must resolve, the exact triple is
// idempotent, and the fan-out limits are evaluated against the current
// assignment sets.
type AssignFulfilmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	policy     services.AssignmentPolicy
}

// NewAssignFulfilmentCommandHandler creates a handler for fulfilment
// assignment operations.
func NewAssignFulfilmentCommandHandler(uowFactory AssignmentUoWFactory) AssignFulfilmentCommandHandler {
	return AssignFulfilmentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAssignmentPolicy(),
	}
}

// Handle processes the assignment command. When the exact triple already
// exists the stored assignment is returned unchanged, so repeated requests
// leave a single record. All reads and the write run inside one unit-of-work
// transaction.
func (h *AssignFulfilmentCommandHandler) Handle(ctx context.Context, cmd AssignFulfilmentCommand) (*fulfilment.Assignment, error) {
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

	if _, err := uow.StoreRepository().Get(ctx, cmd.StoreID()); err != nil {
		return nil, err
	}

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return nil, err
	}

	if _, err := uow.WarehouseRepository().GetActiveByBusinessUnitCode(ctx, cmd.WarehouseBusinessUnit()); err != nil {
		return nil, err
	}

	fulfilmentRepo := uow.FulfilmentRepository()

	existing, err := fulfilmentRepo.FindExact(ctx, cmd.StoreID(), cmd.ProductID(), cmd.WarehouseBusinessUnit())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	candidate, err := fulfilment.NewAssignment(
		uuid.New(),
		cmd.StoreID(),
		cmd.ProductID(),
		cmd.WarehouseBusinessUnit(),
	)
	if err != nil {
		return nil, err
	}

	forStoreAndProduct, err := fulfilmentRepo.GetByStoreAndProduct(ctx, cmd.StoreID(), cmd.ProductID())
	if err != nil {
		return nil, err
	}

	forStore, err := fulfilmentRepo.GetByStore(ctx, cmd.StoreID())
	if err != nil {
		return nil, err
	}

	forWarehouse, err := fulfilmentRepo.GetByWarehouse(ctx, cmd.WarehouseBusinessUnit())
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanAssign(candidate, forStoreAndProduct, forStore, forWarehouse); err != nil {
		return nil, err
	}

	if err = fulfilmentRepo.Add(ctx, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return candidate, nil
}
