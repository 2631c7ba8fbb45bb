// Package storerepo provides data transfer objects and mapping functions
// for store persistence.
package storerepo

import (
	"fulfilment/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store
// aggregates.
type StoreDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                    string    `gorm:"type:varchar(255);not null"`
	QuantityProductsInStock int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for store records.
func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:                      aggregate.ID(),
		Name:                    aggregate.Name(),
		QuantityProductsInStock: aggregate.QuantityProductsInStock(),
	}
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	return store.RestoreStore(dto.ID, dto.Name, dto.QuantityProductsInStock)
}
