// Package location provides the Location value object: a named site with
// fixed ceilings on how many warehouses it may host and how much total
// capacity those warehouses may carry together.
//
// Locations are reference data supplied by an external catalog; the domain
// never mutates them. The value object carries the feasibility rule used by
// the warehouse lifecycle: CanAccommodate decides whether one more warehouse
// of a given capacity fits under both ceilings.
package location

import (
	"errors"
	"fmt"
	"strings"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location was not created
// via the NewLocation constructor.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is an immutable description of a site that can host warehouses.
// It is a value object: two locations with the same attributes are
// interchangeable, and instances are safe to copy and share.
type Location struct {
	// identification is the catalog identifier of the site
	identification string

	// maxNumberOfWarehouses caps how many active warehouses the site hosts
	maxNumberOfWarehouses int

	// maxCapacity caps the summed capacity of active warehouses at the site
	maxCapacity int

	guard guard.ConstructorGuard
}

// NewLocation creates a Location with validated attributes.
// The identification must be non-blank and both ceilings non-negative.
func NewLocation(identification string, maxNumberOfWarehouses int, maxCapacity int) (Location, error) {
	l := Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setIdentification(identification),
		l.setMaxNumberOfWarehouses(maxNumberOfWarehouses),
		l.setMaxCapacity(maxCapacity),
	); err != nil {
		return Location{}, err
	}

	return l, nil
}

// Validate ensures the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Identification returns the catalog identifier of the site.
func (l Location) Identification() string {
	return l.identification
}

// MaxNumberOfWarehouses returns the ceiling on active warehouses at the site.
func (l Location) MaxNumberOfWarehouses() int {
	return l.maxNumberOfWarehouses
}

// MaxCapacity returns the ceiling on summed active warehouse capacity.
func (l Location) MaxCapacity() int {
	return l.maxCapacity
}

// CanAccommodate decides whether the site can take one more warehouse of the
// given capacity, on top of the currently active warehouses.
//
// Parameters:
//   - activeWarehouses: count of active warehouses at the site, excluding any
//     warehouse the caller is about to retire
//   - usedCapacity: summed capacity of those warehouses
//   - additionalCapacity: capacity of the warehouse being admitted
//
// Returns a business rule violation error naming the exceeded ceiling, or
// nil when the warehouse fits. The count ceiling is checked before the
// capacity ceiling, so the reported reason is deterministic.
func (l Location) CanAccommodate(activeWarehouses int, usedCapacity int, additionalCapacity int) error {
	if err := l.Validate(); err != nil {
		return err
	}

	if activeWarehouses >= l.maxNumberOfWarehouses {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("maximum number of warehouses reached for location %s", l.identification),
		)
	}

	if usedCapacity+additionalCapacity > l.maxCapacity {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf(
				"total capacity for location %s would exceed the maximum allowed: %d",
				l.identification, l.maxCapacity,
			),
		)
	}

	return nil
}

func (l *Location) setIdentification(identification string) error {
	if strings.TrimSpace(identification) == "" {
		return errs.NewValueIsRequiredError("identification")
	}

	l.identification = identification
	return nil
}

func (l *Location) setMaxNumberOfWarehouses(maxNumberOfWarehouses int) error {
	if maxNumberOfWarehouses < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxNumberOfWarehouses",
			fmt.Errorf("%d is negative", maxNumberOfWarehouses),
		)
	}

	l.maxNumberOfWarehouses = maxNumberOfWarehouses
	return nil
}

func (l *Location) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity",
			fmt.Errorf("%d is negative", maxCapacity),
		)
	}

	l.maxCapacity = maxCapacity
	return nil
}
