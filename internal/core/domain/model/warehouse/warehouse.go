package warehouse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfilment/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through NewWarehouse or RestoreWarehouse. This ensures all
// warehouses passed around the application carry validated state.
var ErrWarehouseIsNotConstructed = errors.New(
	"Warehouse must be created via NewWarehouse or RestoreWarehouse constructor",
)

// Warehouse is the aggregate root for a logistics unit that stores product.
//
// Invariants maintained by the aggregate:
//   - businessUnitCode and location are non-blank
//   - capacity is positive
//   - stock is non-negative and never exceeds capacity
//   - createdAt is always set; archivedAt is set exactly once, by Archive
//
// The struct uses private fields so the invariants can only be established
// through the constructors and mutated through validated methods.
type Warehouse struct {
	// businessUnitCode is the stable external identifier of the warehouse
	businessUnitCode string

	// location identifies the site hosting the warehouse
	location string

	// capacity is the maximum amount of product the warehouse can hold
	capacity int

	// stock is the amount of product currently held
	stock int

	// createdAt records when this warehouse record was admitted
	createdAt time.Time

	// archivedAt marks retirement; nil while the warehouse is active
	archivedAt *time.Time

	// isConstructed ensures the aggregate was created via a constructor
	isConstructed bool
}

// NewWarehouse creates an active warehouse record with validated fields.
// It is used when a warehouse is first admitted, either through creation or
// as the replacement half of a replace operation.
//
// Parameters:
//   - businessUnitCode: stable external identifier (non-blank)
//   - location: identifier of the hosting site (non-blank)
//   - capacity: maximum product amount (must be > 0)
//   - stock: current product amount (0 <= stock <= capacity)
//   - createdAt: admission timestamp (must be set)
//
// All field violations are aggregated and returned as a single error.
func NewWarehouse(
	businessUnitCode string,
	location string,
	capacity int,
	stock int,
	createdAt time.Time,
) (*Warehouse, error) {
	w := &Warehouse{isConstructed: true}

	if err := errors.Join(
		w.setBusinessUnitCode(businessUnitCode),
		w.setLocation(location),
		w.setCapacity(capacity),
		w.setStock(stock, capacity),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a warehouse from persistent storage,
// including the archived state NewWarehouse never produces. The restored
// aggregate behaves identically to one created through domain operations.
func RestoreWarehouse(
	businessUnitCode string,
	location string,
	capacity int,
	stock int,
	createdAt time.Time,
	archivedAt *time.Time,
) (*Warehouse, error) {
	w := &Warehouse{isConstructed: true}

	if err := errors.Join(
		w.setBusinessUnitCode(businessUnitCode),
		w.setLocation(location),
		w.setCapacity(capacity),
		w.setStock(stock, capacity),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	w.archivedAt = archivedAt
	return w, nil
}

// Validate ensures the Warehouse was properly constructed.
// Returns ErrWarehouseIsNotConstructed for zero-value instances.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// IsEqual compares two warehouses by identity. Warehouses are the same
// entity when they carry the same business unit code.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.businessUnitCode == other.businessUnitCode
}

// BusinessUnitCode returns the stable external identifier of the warehouse.
func (w *Warehouse) BusinessUnitCode() string {
	return w.businessUnitCode
}

// Location returns the identifier of the site hosting the warehouse.
func (w *Warehouse) Location() string {
	return w.location
}

// Capacity returns the maximum amount of product the warehouse can hold.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// Stock returns the amount of product currently held.
func (w *Warehouse) Stock() int {
	return w.stock
}

// CreatedAt returns the admission timestamp of this warehouse record.
func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

// ArchivedAt returns the retirement timestamp, or nil while active.
func (w *Warehouse) ArchivedAt() *time.Time {
	return w.archivedAt
}

// IsActive reports whether the warehouse participates in capacity and count
// calculations. A warehouse is active until it is archived.
func (w *Warehouse) IsActive() bool {
	return w.archivedAt == nil
}

// Archive retires the warehouse at the given moment, retaining every other
// field. Archiving an already archived warehouse is a no-op: the original
// timestamp is kept and false is returned, so double archive is never an
// error and never moves the timestamp.
func (w *Warehouse) Archive(at time.Time) bool {
	if w.archivedAt != nil {
		return false
	}

	w.archivedAt = &at
	return true
}

func (w *Warehouse) setBusinessUnitCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("businessUnitCode")
	}

	w.businessUnitCode = code
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}

	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}

	w.capacity = capacity
	return nil
}

// setStock validates stock against the capacity argument rather than the
// field, so the stock violation is reported even when capacity itself is
// invalid and was never assigned.
func (w *Warehouse) setStock(stock int, capacity int) error {
	if stock < 0 || stock > capacity {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, capacity)
	}

	w.stock = stock
	return nil
}

func (w *Warehouse) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	w.createdAt = createdAt
	return nil
}
