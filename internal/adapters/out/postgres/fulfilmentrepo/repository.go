package fulfilmentrepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/fulfilment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFulfilmentRepository implements FulfilmentRepository using GORM.
type GormFulfilmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormFulfilmentRepository creates a new GORM assignment repository.
func NewGormFulfilmentRepository(db *gorm.DB, tracker aggregateTracker) *GormFulfilmentRepository {
	return &GormFulfilmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment record to the database.
func (r *GormFulfilmentRepository) Add(ctx context.Context, aggregate *fulfilment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// FindExact retrieves the assignment for the exact triple, or nil when no
// such assignment exists.
func (r *GormFulfilmentRepository) FindExact(
	ctx context.Context,
	storeID uuid.UUID,
	productID uuid.UUID,
	warehouseBusinessUnit string,
) (*fulfilment.Assignment, error) {
	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "store_id = ? AND product_id = ? AND warehouse_business_unit = ?",
			storeID, productID, warehouseBusinessUnit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByStoreAndProduct retrieves assignments sharing the store and product.
func (r *GormFulfilmentRepository) GetByStoreAndProduct(
	ctx context.Context,
	storeID uuid.UUID,
	productID uuid.UUID,
) ([]*fulfilment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByStore retrieves assignments sharing the store, any product.
func (r *GormFulfilmentRepository) GetByStore(ctx context.Context, storeID uuid.UUID) ([]*fulfilment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByWarehouse retrieves assignments sharing the warehouse, any store.
func (r *GormFulfilmentRepository) GetByWarehouse(ctx context.Context, warehouseBusinessUnit string) ([]*fulfilment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_business_unit = ?", warehouseBusinessUnit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*fulfilment.Assignment, error) {
	assignments := make([]*fulfilment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
