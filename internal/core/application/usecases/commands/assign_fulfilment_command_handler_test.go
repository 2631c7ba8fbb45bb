package commands_test

import (
	"context"
	"testing"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/fulfilment"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type AssignFulfilmentRepo struct{ mock.Mock }

func (m *AssignFulfilmentRepo) Add(ctx context.Context, a *fulfilment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssignFulfilmentRepo) FindExact(ctx context.Context, storeID uuid.UUID, productID uuid.UUID, code string) (*fulfilment.Assignment, error) {
	args := m.Called(ctx, storeID, productID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfilment.Assignment), args.Error(1)
}

func (m *AssignFulfilmentRepo) GetByStoreAndProduct(ctx context.Context, storeID uuid.UUID, productID uuid.UUID) ([]*fulfilment.Assignment, error) {
	args := m.Called(ctx, storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfilment.Assignment), args.Error(1)
}

func (m *AssignFulfilmentRepo) GetByStore(ctx context.Context, storeID uuid.UUID) ([]*fulfilment.Assignment, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfilment.Assignment), args.Error(1)
}

func (m *AssignFulfilmentRepo) GetByWarehouse(ctx context.Context, code string) ([]*fulfilment.Assignment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfilment.Assignment), args.Error(1)
}

type AssignStoreRepo struct{ mock.Mock }

func (m *AssignStoreRepo) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *AssignStoreRepo) Update(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *AssignStoreRepo) Get(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *AssignStoreRepo) GetAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

type AssignProductRepo struct{ mock.Mock }

func (m *AssignProductRepo) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *AssignProductRepo) Get(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *AssignProductRepo) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type AssignWarehouseRepo struct{ mock.Mock }

func (m *AssignWarehouseRepo) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *AssignWarehouseRepo) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *AssignWarehouseRepo) GetActiveByBusinessUnitCode(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *AssignWarehouseRepo) ExistsWithBusinessUnitCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *AssignWarehouseRepo) GetActiveByLocation(ctx context.Context, loc string) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

func (m *AssignWarehouseRepo) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type AssignUnitOfWork struct{ mock.Mock }

func (m *AssignUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AssignUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AssignUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AssignUnitOfWork) FulfilmentRepository() ports.FulfilmentRepository {
	args := m.Called()
	return args.Get(0).(ports.FulfilmentRepository)
}

func (m *AssignUnitOfWork) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *AssignUnitOfWork) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *AssignUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type AssignUoWFactory struct{ mock.Mock }

func (m *AssignUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type assignFixture struct {
	storeID   uuid.UUID
	productID uuid.UUID
	store     *store.Store
	product   *product.Product
	warehouse *warehouse.Warehouse

	fulfilmentRepo *AssignFulfilmentRepo
	storeRepo      *AssignStoreRepo
	productRepo    *AssignProductRepo
	warehouseRepo  *AssignWarehouseRepo
	uow            *AssignUnitOfWork
	factory        *AssignUoWFactory
}

func newAssignFixture(t *testing.T) *assignFixture {
	t.Helper()

	storeID := uuid.New()
	productID := uuid.New()

	testStore, err := store.NewStore(storeID, "Main street store", 10)
	require.NoError(t, err)
	testProduct, err := product.NewProduct(productID, "Canned beans", "", 100)
	require.NoError(t, err)

	return &assignFixture{
		storeID:        storeID,
		productID:      productID,
		store:          testStore,
		product:        testProduct,
		warehouse:      activeWarehouse(t, "MWH.001", "ZWOLLE-001", 40, 5),
		fulfilmentRepo: new(AssignFulfilmentRepo),
		storeRepo:      new(AssignStoreRepo),
		productRepo:    new(AssignProductRepo),
		warehouseRepo:  new(AssignWarehouseRepo),
		uow:            new(AssignUnitOfWork),
		factory:        new(AssignUoWFactory),
	}
}

func testAssignment(t *testing.T, storeID uuid.UUID, productID uuid.UUID, code string) *fulfilment.Assignment {
	t.Helper()
	a, err := fulfilment.NewAssignment(uuid.New(), storeID, productID, code)
	require.NoError(t, err)
	return a
}

func TestAssignFulfilmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.001")
	require.NoError(t, err)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		f.uow.On("WarehouseRepository").Return(f.warehouseRepo).Once(),
		f.warehouseRepo.On("GetActiveByBusinessUnitCode", ctx, "MWH.001").Return(f.warehouse, nil).Once(),
		f.uow.On("FulfilmentRepository").Return(f.fulfilmentRepo).Once(),
		f.fulfilmentRepo.On("FindExact", ctx, f.storeID, f.productID, "MWH.001").Return(nil, nil).Once(),
		f.fulfilmentRepo.On("GetByStoreAndProduct", ctx, f.storeID, f.productID).
			Return([]*fulfilment.Assignment{}, nil).Once(),
		f.fulfilmentRepo.On("GetByStore", ctx, f.storeID).Return([]*fulfilment.Assignment{}, nil).Once(),
		f.fulfilmentRepo.On("GetByWarehouse", ctx, "MWH.001").Return([]*fulfilment.Assignment{}, nil).Once(),
		f.fulfilmentRepo.On("Add", ctx, mock.AnythingOfType("*fulfilment.Assignment")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, f.storeID, created.StoreID())
	assert.Equal(t, f.productID, created.ProductID())
	assert.Equal(t, "MWH.001", created.WarehouseBusinessUnit())
	assert.NotEqual(t, uuid.Nil, created.ID())
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.fulfilmentRepo.AssertExpectations(t)
}

func TestAssignFulfilmentCommandHandler_Handle_DuplicateTripleIsIdempotent(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.001")
	require.NoError(t, err)

	existing := testAssignment(t, f.storeID, f.productID, "MWH.001")

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		f.uow.On("WarehouseRepository").Return(f.warehouseRepo).Once(),
		f.warehouseRepo.On("GetActiveByBusinessUnitCode", ctx, "MWH.001").Return(f.warehouse, nil).Once(),
		f.uow.On("FulfilmentRepository").Return(f.fulfilmentRepo).Once(),
		f.fulfilmentRepo.On("FindExact", ctx, f.storeID, f.productID, "MWH.001").Return(existing, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, existing, got)
	f.fulfilmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignFulfilmentCommandHandler_Handle_StoreNotFound(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.001")
	require.NoError(t, err)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).
			Return(nil, errs.NewObjectNotFoundError("storeID", f.storeID)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.fulfilmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAssignFulfilmentCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.001")
	require.NoError(t, err)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).
			Return(nil, errs.NewObjectNotFoundError("productID", f.productID)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignFulfilmentCommandHandler_Handle_WarehouseNotActive(t *testing.T) {
	// Archived warehouses resolve like unknown ones: only active records
	// may take new assignments.
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.OLD")
	require.NoError(t, err)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		f.uow.On("WarehouseRepository").Return(f.warehouseRepo).Once(),
		f.warehouseRepo.On("GetActiveByBusinessUnitCode", ctx, "MWH.OLD").
			Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "MWH.OLD")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignFulfilmentCommandHandler_Handle_StoreProductFanOutExhausted(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.003")
	require.NoError(t, err)

	forStoreAndProduct := []*fulfilment.Assignment{
		testAssignment(t, f.storeID, f.productID, "MWH.001"),
		testAssignment(t, f.storeID, f.productID, "MWH.002"),
	}

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		f.uow.On("WarehouseRepository").Return(f.warehouseRepo).Once(),
		f.warehouseRepo.On("GetActiveByBusinessUnitCode", ctx, "MWH.003").
			Return(activeWarehouse(t, "MWH.003", "ZWOLLE-001", 40, 5), nil).Once(),
		f.uow.On("FulfilmentRepository").Return(f.fulfilmentRepo).Once(),
		f.fulfilmentRepo.On("FindExact", ctx, f.storeID, f.productID, "MWH.003").Return(nil, nil).Once(),
		f.fulfilmentRepo.On("GetByStoreAndProduct", ctx, f.storeID, f.productID).
			Return(forStoreAndProduct, nil).Once(),
		f.fulfilmentRepo.On("GetByStore", ctx, f.storeID).Return(forStoreAndProduct, nil).Once(),
		f.fulfilmentRepo.On("GetByWarehouse", ctx, "MWH.003").Return([]*fulfilment.Assignment{}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "warehouses per store")
	f.fulfilmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAssignFulfilmentCommandHandler_Handle_StoreFanOutExhausted(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.004")
	require.NoError(t, err)

	otherProduct := uuid.New()
	forStore := []*fulfilment.Assignment{
		testAssignment(t, f.storeID, otherProduct, "MWH.001"),
		testAssignment(t, f.storeID, otherProduct, "MWH.002"),
		testAssignment(t, f.storeID, otherProduct, "MWH.003"),
	}

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		f.uow.On("WarehouseRepository").Return(f.warehouseRepo).Once(),
		f.warehouseRepo.On("GetActiveByBusinessUnitCode", ctx, "MWH.004").
			Return(activeWarehouse(t, "MWH.004", "ZWOLLE-001", 40, 5), nil).Once(),
		f.uow.On("FulfilmentRepository").Return(f.fulfilmentRepo).Once(),
		f.fulfilmentRepo.On("FindExact", ctx, f.storeID, f.productID, "MWH.004").Return(nil, nil).Once(),
		f.fulfilmentRepo.On("GetByStoreAndProduct", ctx, f.storeID, f.productID).
			Return([]*fulfilment.Assignment{}, nil).Once(),
		f.fulfilmentRepo.On("GetByStore", ctx, f.storeID).Return(forStore, nil).Once(),
		f.fulfilmentRepo.On("GetByWarehouse", ctx, "MWH.004").Return([]*fulfilment.Assignment{}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "different warehouses")
}

func TestAssignFulfilmentCommandHandler_Handle_WarehouseProductTypesExhausted(t *testing.T) {
	ctx := t.Context()
	f := newAssignFixture(t)
	cmd, err := commands.NewAssignFulfilmentCommand(f.storeID, f.productID, "MWH.001")
	require.NoError(t, err)

	forWarehouse := make([]*fulfilment.Assignment, 0, 5)
	for range 5 {
		forWarehouse = append(forWarehouse, testAssignment(t, uuid.New(), uuid.New(), "MWH.001"))
	}

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("StoreRepository").Return(f.storeRepo).Once(),
		f.storeRepo.On("Get", ctx, f.storeID).Return(f.store, nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		f.uow.On("WarehouseRepository").Return(f.warehouseRepo).Once(),
		f.warehouseRepo.On("GetActiveByBusinessUnitCode", ctx, "MWH.001").Return(f.warehouse, nil).Once(),
		f.uow.On("FulfilmentRepository").Return(f.fulfilmentRepo).Once(),
		f.fulfilmentRepo.On("FindExact", ctx, f.storeID, f.productID, "MWH.001").Return(nil, nil).Once(),
		f.fulfilmentRepo.On("GetByStoreAndProduct", ctx, f.storeID, f.productID).
			Return([]*fulfilment.Assignment{}, nil).Once(),
		f.fulfilmentRepo.On("GetByStore", ctx, f.storeID).Return([]*fulfilment.Assignment{}, nil).Once(),
		f.fulfilmentRepo.On("GetByWarehouse", ctx, "MWH.001").Return(forWarehouse, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignFulfilmentCommandHandler(f.factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "product types")
}

func TestAssignFulfilmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignFulfilmentCommand{} // not constructed properly
	factory := new(AssignUoWFactory)

	handler := commands.NewAssignFulfilmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "must be created via NewAssignFulfilmentCommand constructor")
}
