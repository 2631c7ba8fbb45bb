// Package store provides the Store aggregate: a retail outlet that products
// are fulfilled to. Stores are plain reference entities for the assignment
// rules; their own lifecycle is simple CRUD mirrored to a legacy system.
package store

import (
	"errors"
	"math"
	"strings"

	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through NewStore or RestoreStore.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore constructor")

// Store represents a retail outlet served by the fulfilment network.
type Store struct {
	id                      uuid.UUID
	name                    string
	quantityProductsInStock int

	isConstructed bool
}

// NewStore creates a store with validated fields. Name must be non-blank and
// the stock quantity non-negative.
func NewStore(id uuid.UUID, name string, quantityProductsInStock int) (*Store, error) {
	s := &Store{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a store from persistent storage.
func RestoreStore(id uuid.UUID, name string, quantityProductsInStock int) (*Store, error) {
	return NewStore(id, name, quantityProductsInStock)
}

// Validate ensures the Store was properly constructed.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store identity.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Name returns the store name.
func (s *Store) Name() string {
	return s.name
}

// QuantityProductsInStock returns the number of products the store carries.
func (s *Store) QuantityProductsInStock() int {
	return s.quantityProductsInStock
}

// ChangeName renames the store.
func (s *Store) ChangeName(name string) error {
	return s.setName(name)
}

// ChangeQuantityProductsInStock updates the carried product count.
func (s *Store) ChangeQuantityProductsInStock(quantity int) error {
	return s.setQuantityProductsInStock(quantity)
}

func (s *Store) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("id")
	}

	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	s.name = name
	return nil
}

func (s *Store) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantityProductsInStock", quantity, 0, math.MaxInt)
	}

	s.quantityProductsInStock = quantity
	return nil
}
