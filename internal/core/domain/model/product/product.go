// Package product provides the Product aggregate: a product type carried by
// the fulfilment network. Products are reference entities for the assignment
// rules with a simple CRUD lifecycle of their own.
package product

import (
	"errors"
	"math"
	"strings"

	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product represents a product type that warehouses store and stores sell.
type Product struct {
	id          uuid.UUID
	name        string
	description string
	stock       int

	isConstructed bool
}

// NewProduct creates a product with validated fields. Name must be non-blank
// and stock non-negative; the description is optional.
func NewProduct(id uuid.UUID, name string, description string, stock int) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a product from persistent storage.
func RestoreProduct(id uuid.UUID, name string, description string, stock int) (*Product, error) {
	return NewProduct(id, name, description, stock)
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identity.
func (p *Product) ID() uuid.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Stock returns the network-wide stock count for the product.
func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("id")
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, math.MaxInt)
	}

	p.stock = stock
	return nil
}
