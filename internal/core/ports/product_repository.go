package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identity.
	// Returns an ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id uuid.UUID) (*product.Product, error)

	// GetAll retrieves every product, ordered by name.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
