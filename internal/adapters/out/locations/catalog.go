// Package locations provides the in-memory implementation of the locations
// catalog. The catalog is reference data maintained by the network planning
// team; it changes by release, not at runtime, so a seeded map serves it.
package locations

import (
	"context"

	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/pkg/errs"
)

type seed struct {
	identification        string
	maxNumberOfWarehouses int
	maxCapacity           int
}

var catalogSeed = []seed{
	{identification: "ZWOLLE-001", maxNumberOfWarehouses: 1, maxCapacity: 40},
	{identification: "AMSTERDAM-001", maxNumberOfWarehouses: 2, maxCapacity: 150},
	{identification: "AMSTERDAM-002", maxNumberOfWarehouses: 3, maxCapacity: 300},
	{identification: "TILBURG-001", maxNumberOfWarehouses: 2, maxCapacity: 120},
	{identification: "HELMOND-001", maxNumberOfWarehouses: 1, maxCapacity: 75},
	{identification: "EINDHOVEN-001", maxNumberOfWarehouses: 4, maxCapacity: 500},
}

// Catalog resolves location identifiers against the seeded reference data.
type Catalog struct {
	locations map[string]location.Location
}

// NewCatalog creates the locations catalog with the seeded reference data.
func NewCatalog() (*Catalog, error) {
	catalog := &Catalog{
		locations: make(map[string]location.Location, len(catalogSeed)),
	}

	for _, s := range catalogSeed {
		loc, err := location.NewLocation(s.identification, s.maxNumberOfWarehouses, s.maxCapacity)
		if err != nil {
			return nil, err
		}
		catalog.locations[s.identification] = loc
	}

	return catalog, nil
}

// Resolve returns the location for the identifier.
func (c *Catalog) Resolve(_ context.Context, identifier string) (location.Location, error) {
	loc, ok := c.locations[identifier]
	if !ok {
		return location.Location{}, errs.NewObjectNotFoundError("location", identifier)
	}

	return loc, nil
}
