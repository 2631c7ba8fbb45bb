// Package fulfilmentrepo provides data transfer objects and mapping
// functions for assignment persistence. A unique index over the full triple
// backs the idempotent duplicate handling of the assignment use case.
package fulfilmentrepo

import (
	"fulfilment/internal/core/domain/model/fulfilment"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting fulfilment
// assignments.
type AssignmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID               uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uix_assignments_triple"`
	ProductID             uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uix_assignments_triple"`
	WarehouseBusinessUnit string    `gorm:"type:varchar(255);not null;index;uniqueIndex:uix_assignments_triple"`
}

// TableName specifies the database table name for assignment records.
func (AssignmentDTO) TableName() string {
	return "fulfilment_assignments"
}

func fromDomain(aggregate *fulfilment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                    aggregate.ID(),
		StoreID:               aggregate.StoreID(),
		ProductID:             aggregate.ProductID(),
		WarehouseBusinessUnit: aggregate.WarehouseBusinessUnit(),
	}
}

func toDomain(dto AssignmentDTO) (*fulfilment.Assignment, error) {
	return fulfilment.RestoreAssignment(dto.ID, dto.StoreID, dto.ProductID, dto.WarehouseBusinessUnit)
}
