package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CreateStoreRepo struct{ mock.Mock }

func (m *CreateStoreRepo) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *CreateStoreRepo) Update(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *CreateStoreRepo) Get(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *CreateStoreRepo) GetAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

type CreateStoreUnitOfWork struct{ mock.Mock }

func (m *CreateStoreUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CreateStoreUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CreateStoreUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CreateStoreUnitOfWork) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type CreateStoreUoWFactory struct{ mock.Mock }

func (m *CreateStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

type CreateStoreManager struct{ mock.Mock }

func (m *CreateStoreManager) NotifyStoreCreated(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *CreateStoreManager) NotifyStoreUpdated(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestCreateStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand("Main street store", 25)
	require.NoError(t, err)

	storeRepo := new(CreateStoreRepo)
	uow := new(CreateStoreUnitOfWork)
	factory := new(CreateStoreUoWFactory)
	storeManager := new(CreateStoreManager)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Add", ctx, mock.AnythingOfType("*store.Store")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		storeManager.On("NotifyStoreCreated", ctx, mock.AnythingOfType("*store.Store")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateStoreCommandHandler(factory, storeManager)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Main street store", created.Name())
	assert.Equal(t, 25, created.QuantityProductsInStock())
	assert.NotEqual(t, uuid.Nil, created.ID())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
	storeManager.AssertExpectations(t)
}

func TestCreateStoreCommandHandler_Handle_LegacyPushFailureDoesNotFail(t *testing.T) {
	// The local transaction already committed; a legacy push failure is
	// left for the sync job to retry.
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand("Main street store", 25)
	require.NoError(t, err)

	storeRepo := new(CreateStoreRepo)
	uow := new(CreateStoreUnitOfWork)
	factory := new(CreateStoreUoWFactory)
	storeManager := new(CreateStoreManager)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Add", ctx, mock.AnythingOfType("*store.Store")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		storeManager.On("NotifyStoreCreated", ctx, mock.AnythingOfType("*store.Store")).
			Return(errors.New("legacy system unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateStoreCommandHandler(factory, storeManager)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	storeManager.AssertExpectations(t)
}

func TestCreateStoreCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand("Main street store", 25)
	require.NoError(t, err)

	storeRepo := new(CreateStoreRepo)
	uow := new(CreateStoreUnitOfWork)
	factory := new(CreateStoreUoWFactory)
	storeManager := new(CreateStoreManager)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Add", ctx, mock.AnythingOfType("*store.Store")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateStoreCommandHandler(factory, storeManager)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "insert error")
	storeManager.AssertNotCalled(t, "NotifyStoreCreated", mock.Anything, mock.Anything)
}

func TestCreateStoreCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateStoreCommand{} // not constructed properly
	factory := new(CreateStoreUoWFactory)
	storeManager := new(CreateStoreManager)

	handler := commands.NewCreateStoreCommandHandler(factory, storeManager)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "must be created via NewCreateStoreCommand constructor")
}
