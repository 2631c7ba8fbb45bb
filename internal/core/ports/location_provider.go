package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/location"
)

// LocationsProvider resolves location identifiers against the externally
// supplied catalog of sites and their ceilings. The catalog is read-only
// reference data; the core never mutates it.
type LocationsProvider interface {
	// Resolve returns the location for the identifier.
	// Returns an ObjectNotFoundError for identifiers absent from the
	// catalog; the use cases treat that the same as a validation failure.
	Resolve(ctx context.Context, identifier string) (location.Location, error)
}
