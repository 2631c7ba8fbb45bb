package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
)

// LegacyStoreManager mirrors store changes to the legacy store management
// system. Notifications run after the local transaction commits; a failed
// push must not roll back the local change, it is queued and retried by the
// legacy sync job instead.
type LegacyStoreManager interface {
	// NotifyStoreCreated pushes a newly created store to the legacy system.
	NotifyStoreCreated(ctx context.Context, aggregate *store.Store) error

	// NotifyStoreUpdated pushes an updated store to the legacy system.
	NotifyStoreUpdated(ctx context.Context, aggregate *store.Store) error
}
