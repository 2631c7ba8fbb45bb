// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. This package implements the repository pattern
// for the warehouse aggregate, handling the conversion between domain
// entities and database rows.
//
// A business unit code maps to many rows over time: at most one active row
// and any number of archived ones. A partial unique index enforces the
// single-active-row rule at the database level, so concurrent admissions of
// the same code cannot both commit.
package warehouserepo

import (
	"time"

	"fulfilment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates.
type WarehouseDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessUnitCode string     `gorm:"type:varchar(255);not null;index;uniqueIndex:uix_warehouses_active_code,where:archived_at IS NULL"`
	Location         string     `gorm:"type:varchar(255);not null;index"`
	Capacity         int        `gorm:"type:int;not null"`
	Stock            int        `gorm:"type:int;not null"`
	CreatedAt        time.Time  `gorm:"not null"`
	ArchivedAt       *time.Time `gorm:"index"`
}

// TableName specifies the database table name for warehouse records.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse aggregate to its database representation.
// The row ID is assigned by the repository on insert; updates address rows
// by business unit code instead.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		BusinessUnitCode: aggregate.BusinessUnitCode(),
		Location:         aggregate.Location(),
		Capacity:         aggregate.Capacity(),
		Stock:            aggregate.Stock(),
		CreatedAt:        aggregate.CreatedAt(),
		ArchivedAt:       aggregate.ArchivedAt(),
	}
}

// toDomain converts a database row to a warehouse aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	return warehouse.RestoreWarehouse(
		dto.BusinessUnitCode,
		dto.Location,
		dto.Capacity,
		dto.Stock,
		dto.CreatedAt,
		dto.ArchivedAt,
	)
}
