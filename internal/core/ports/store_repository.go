package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by its identity.
	// Returns an ObjectNotFoundError when the store does not exist.
	Get(ctx context.Context, id uuid.UUID) (*store.Store, error)

	// GetAll retrieves every store, ordered by name.
	GetAll(ctx context.Context) ([]*store.Store, error)
}
