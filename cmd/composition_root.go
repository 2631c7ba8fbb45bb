package cmd

import (
	"fmt"

	"fulfilment/internal/adapters/out/legacy"
	"fulfilment/internal/adapters/out/locations"
	"fulfilment/internal/adapters/out/postgres"
	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	locations     *locations.Catalog
	legacyGateway *legacy.Gateway
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	catalog, err := locations.NewCatalog()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build location catalog: %w", err)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		locations:     catalog,
		legacyGateway: legacy.NewGateway(config.LegacyStoreManager),
	}, nil
}

func (c *CompositionRoot) LegacyGateway() *legacy.Gateway {
	return c.legacyGateway
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f, c.locations)
}

func (c *CompositionRoot) CreateReplaceWarehouseCommandHandler() commands.ReplaceWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceWarehouseCommandHandler(f, c.locations)
}

func (c *CompositionRoot) CreateArchiveWarehouseCommandHandler() commands.ArchiveWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignFulfilmentCommandHandler() commands.AssignFulfilmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignFulfilmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f, c.legacyGateway)
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStoreCommandHandler(f, c.legacyGateway)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveWarehousesQueryHandler() queries.GetActiveWarehousesQueryHandler {
	return queries.NewGetActiveWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStoresQueryHandler() queries.GetAllStoresQueryHandler {
	return queries.NewGetAllStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
