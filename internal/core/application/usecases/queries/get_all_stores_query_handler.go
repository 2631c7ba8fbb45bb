package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllStoresQueryHandler retrieves all store information from the
// database.
type GetAllStoresQueryHandler struct {
	db *gorm.DB
}

// NewGetAllStoresQueryHandler creates a handler for store retrieval queries.
func NewGetAllStoresQueryHandler(db *gorm.DB) GetAllStoresQueryHandler {
	return GetAllStoresQueryHandler{db: db}
}

// Handle executes the query to retrieve all stores, sorted by name.
func (h GetAllStoresQueryHandler) Handle(
	ctx context.Context,
	query GetAllStoresQuery,
) ([]GetAllStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]GetAllStoresQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity_products_in_stock
		FROM stores
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var store GetAllStoresQueryResponse

		err = rows.Scan(
			&store.ID,
			&store.Name,
			&store.QuantityProductsInStock,
		)
		if err != nil {
			return nil, err
		}

		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
