package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveWarehousesQueryHandler retrieves active warehouses straight from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetActiveWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveWarehousesQueryHandler creates a handler for warehouse fleet
// queries. Requires a GORM database connection for query execution.
func NewGetActiveWarehousesQueryHandler(db *gorm.DB) GetActiveWarehousesQueryHandler {
	return GetActiveWarehousesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active warehouses.
// Returns warehouse read models sorted by business unit code.
func (h GetActiveWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWarehousesQuery,
) ([]GetActiveWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetActiveWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			business_unit_code,
			location,
			capacity,
			stock
		FROM warehouses
		WHERE archived_at IS NULL
		ORDER BY business_unit_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var warehouse GetActiveWarehousesQueryResponse

		err = rows.Scan(
			&warehouse.BusinessUnitCode,
			&warehouse.Location,
			&warehouse.Capacity,
			&warehouse.Stock,
		)
		if err != nil {
			return nil, err
		}

		warehouses = append(warehouses, warehouse)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
