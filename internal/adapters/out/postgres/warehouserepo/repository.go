package warehouserepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse record to the database.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = uuid.New()
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.BusinessUnitCode(), aggregate)
	return nil
}

// Update overwrites the active record carrying the aggregate's business
// unit code. Archiving flows through here as well: once the aggregate's
// archive timestamp is written the record stops matching the active filter.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("business_unit_code = ? AND archived_at IS NULL", aggregate.BusinessUnitCode()).
		Updates(map[string]any{
			"location":    dto.Location,
			"capacity":    dto.Capacity,
			"stock":       dto.Stock,
			"archived_at": dto.ArchivedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.BusinessUnitCode(), aggregate)
	return nil
}

// GetActiveByBusinessUnitCode retrieves the active warehouse under the code.
func (r *GormWarehouseRepository) GetActiveByBusinessUnitCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO
	err := r.db.WithContext(ctx).
		First(&dto, "business_unit_code = ? AND archived_at IS NULL", businessUnitCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("businessUnitCode", businessUnitCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithBusinessUnitCode reports whether any record, active or archived,
// carries the code.
func (r *GormWarehouseRepository) ExistsWithBusinessUnitCode(ctx context.Context, businessUnitCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("business_unit_code = ?", businessUnitCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetActiveByLocation retrieves all active warehouses hosted at the location.
func (r *GormWarehouseRepository) GetActiveByLocation(ctx context.Context, location string) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	err := r.db.WithContext(ctx).
		Where("location = ? AND archived_at IS NULL", location).
		Order("business_unit_code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves every active warehouse.
func (r *GormWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	err := r.db.WithContext(ctx).
		Where("archived_at IS NULL").
		Order("business_unit_code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []WarehouseDTO) ([]*warehouse.Warehouse, error) {
	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}
