package commands

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"

	"github.com/google/uuid"
)

// CreateStoreCommandHandler handles the business logic for registering a
// store. The legacy store management system is notified after the local
// transaction commits; a failed push is logged and left for the sync job,
// it never fails the command.
type CreateStoreCommandHandler struct {
	uowFactory   StoreUoWFactory
	storeManager ports.LegacyStoreManager
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(
	uowFactory StoreUoWFactory,
	storeManager ports.LegacyStoreManager,
) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory:   uowFactory,
		storeManager: storeManager,
	}
}

// Handle processes the store creation command and returns the persisted
// store.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (*store.Store, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := store.NewStore(uuid.New(), cmd.Name(), cmd.QuantityProductsInStock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.storeManager.NotifyStoreCreated(ctx, aggregate); err != nil {
		slog.Warn("failed to push store creation to legacy store manager",
			"storeId", aggregate.ID(),
			"error", err)
	}

	return aggregate, nil
}
