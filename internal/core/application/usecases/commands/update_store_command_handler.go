package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// UpdateStoreCommandHandler handles the business logic for changing a
// store's name and stock level. Like creation, the legacy store management
// system is notified only after the local transaction commits.
type UpdateStoreCommandHandler struct {
	uowFactory   StoreUoWFactory
	storeManager ports.LegacyStoreManager
}

// NewUpdateStoreCommandHandler creates a handler for store updates.
func NewUpdateStoreCommandHandler(
	uowFactory StoreUoWFactory,
	storeManager ports.LegacyStoreManager,
) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory:   uowFactory,
		storeManager: storeManager,
	}
}

// Handle processes the store update command and returns the updated store.
func (h *UpdateStoreCommandHandler) Handle(ctx context.Context, cmd UpdateStoreCommand) (*store.Store, error) {
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

	storeRepo := uow.StoreRepository()

	aggregate, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		aggregate.ChangeName(cmd.Name()),
		aggregate.ChangeQuantityProductsInStock(cmd.QuantityProductsInStock()),
	); err != nil {
		return nil, err
	}

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.storeManager.NotifyStoreUpdated(ctx, aggregate); err != nil {
		slog.Warn("failed to push store update to legacy store manager",
			"storeId", aggregate.ID(),
			"error", err)
	}

	return aggregate, nil
}
