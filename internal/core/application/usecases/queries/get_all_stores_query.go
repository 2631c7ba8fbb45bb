package queries

import (
	"errors"

	"fulfilment/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetAllStoresQueryIsNotConstructed = errors.New(
	"GetAllStoresQuery must be created via NewGetAllStoresQuery constructor",
)

// GetAllStoresQuery retrieves every registered store.
type GetAllStoresQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllStoresQuery creates a query to retrieve all stores. This is a
// parameterless query.
func NewGetAllStoresQuery() GetAllStoresQuery {
	return GetAllStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStoresQueryIsNotConstructed)
}

// GetAllStoresQueryResponse represents store information in the read model.
type GetAllStoresQueryResponse struct {
	ID                      uuid.UUID
	Name                    string
	QuantityProductsInStock int
}
