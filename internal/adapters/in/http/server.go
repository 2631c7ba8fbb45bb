// Package http exposes the fulfilment use cases over a REST API.
// It coordinates between HTTP handlers and application use cases, mapping
// the error taxonomy onto status codes: validation failures become 400,
// unknown objects 404, business rule violations 409.
package http

import (
	"errors"
	"net/http"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error envelope returned on failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Warehouse is the JSON representation of a warehouse.
type Warehouse struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         int    `json:"capacity"`
	Stock            int    `json:"stock"`
}

// WarehouseDraft is the JSON request body for creating or replacing a
// warehouse.
type WarehouseDraft struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         int    `json:"capacity"`
	Stock            int    `json:"stock"`
}

// Assignment is the JSON representation of a fulfilment assignment.
type Assignment struct {
	ID                    uuid.UUID `json:"id"`
	StoreID               uuid.UUID `json:"storeId"`
	ProductID             uuid.UUID `json:"productId"`
	WarehouseBusinessUnit string    `json:"warehouseBusinessUnit"`
}

// AssignmentDraft is the JSON request body for assigning a warehouse to a
// store and product.
type AssignmentDraft struct {
	StoreID               uuid.UUID `json:"storeId"`
	ProductID             uuid.UUID `json:"productId"`
	WarehouseBusinessUnit string    `json:"warehouseBusinessUnit"`
}

// Store is the JSON representation of a store.
type Store struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	QuantityProductsInStock int       `json:"quantityProductsInStock"`
}

// StoreDraft is the JSON request body for creating or updating a store.
type StoreDraft struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// Product is the JSON representation of a product.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Stock       int       `json:"stock"`
}

// ProductDraft is the JSON request body for creating a product.
type ProductDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
}

// Server handles HTTP requests for the fulfilment service.
type Server struct {
	// Command handlers
	createWarehouseHandler  commands.CreateWarehouseCommandHandler
	replaceWarehouseHandler commands.ReplaceWarehouseCommandHandler
	archiveWarehouseHandler commands.ArchiveWarehouseCommandHandler
	assignFulfilmentHandler commands.AssignFulfilmentCommandHandler
	createStoreHandler      commands.CreateStoreCommandHandler
	updateStoreHandler      commands.UpdateStoreCommandHandler
	createProductHandler    commands.CreateProductCommandHandler

	// Query handlers
	getActiveWarehousesHandler queries.GetActiveWarehousesQueryHandler
	getAllStoresHandler        queries.GetAllStoresQueryHandler
	getAllProductsHandler      queries.GetAllProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createWarehouseHandler commands.CreateWarehouseCommandHandler,
	replaceWarehouseHandler commands.ReplaceWarehouseCommandHandler,
	archiveWarehouseHandler commands.ArchiveWarehouseCommandHandler,
	assignFulfilmentHandler commands.AssignFulfilmentCommandHandler,
	createStoreHandler commands.CreateStoreCommandHandler,
	updateStoreHandler commands.UpdateStoreCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getActiveWarehousesHandler queries.GetActiveWarehousesQueryHandler,
	getAllStoresHandler queries.GetAllStoresQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
) *Server {
	return &Server{
		createWarehouseHandler:     createWarehouseHandler,
		replaceWarehouseHandler:    replaceWarehouseHandler,
		archiveWarehouseHandler:    archiveWarehouseHandler,
		assignFulfilmentHandler:    assignFulfilmentHandler,
		createStoreHandler:         createStoreHandler,
		updateStoreHandler:         updateStoreHandler,
		createProductHandler:       createProductHandler,
		getActiveWarehousesHandler: getActiveWarehousesHandler,
		getAllStoresHandler:        getAllStoresHandler,
		getAllProductsHandler:      getAllProductsHandler,
	}
}

// RegisterRoutes binds the API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/warehouses", s.GetWarehouses)
	api.POST("/warehouses", s.CreateWarehouse)
	api.PUT("/warehouses/:businessUnitCode", s.ReplaceWarehouse)
	api.DELETE("/warehouses/:businessUnitCode", s.ArchiveWarehouse)

	api.POST("/fulfilments", s.AssignFulfilment)

	api.GET("/stores", s.GetStores)
	api.POST("/stores", s.CreateStore)
	api.PUT("/stores/:storeId", s.UpdateStore)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
}

// GetWarehouses handles GET /api/v1/warehouses - retrieves the active fleet.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	query := queries.NewGetActiveWarehousesQuery()

	warehouses, err := s.getActiveWarehousesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Warehouse, len(warehouses))
	for i, w := range warehouses {
		response[i] = Warehouse{
			BusinessUnitCode: w.BusinessUnitCode,
			Location:         w.Location,
			Capacity:         w.Capacity,
			Stock:            w.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/warehouses - admits a new warehouse.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var draft WarehouseDraft
	if err := ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWarehouseCommand(
		draft.BusinessUnitCode,
		draft.Location,
		draft.Capacity,
		draft.Stock,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Warehouse{
		BusinessUnitCode: created.BusinessUnitCode(),
		Location:         created.Location(),
		Capacity:         created.Capacity(),
		Stock:            created.Stock(),
	})
}

// ReplaceWarehouse handles PUT /api/v1/warehouses/:businessUnitCode -
// archives the active warehouse under the code and admits its replacement.
func (s *Server) ReplaceWarehouse(ctx echo.Context) error {
	var draft WarehouseDraft
	if err := ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	businessUnitCode := ctx.Param("businessUnitCode")
	if draft.BusinessUnitCode != "" && draft.BusinessUnitCode != businessUnitCode {
		return badRequest(ctx, "Business unit code in body does not match path")
	}

	cmd, err := commands.NewReplaceWarehouseCommand(
		businessUnitCode,
		draft.Location,
		draft.Capacity,
		draft.Stock,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	replacement, err := s.replaceWarehouseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Warehouse{
		BusinessUnitCode: replacement.BusinessUnitCode(),
		Location:         replacement.Location(),
		Capacity:         replacement.Capacity(),
		Stock:            replacement.Stock(),
	})
}

// ArchiveWarehouse handles DELETE /api/v1/warehouses/:businessUnitCode -
// retires the active warehouse. Archiving an already archived warehouse
// succeeds without effect.
func (s *Server) ArchiveWarehouse(ctx echo.Context) error {
	cmd, err := commands.NewArchiveWarehouseCommand(ctx.Param("businessUnitCode"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.archiveWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignFulfilment handles POST /api/v1/fulfilments - records that a
// warehouse fulfils a product for a store.
func (s *Server) AssignFulfilment(ctx echo.Context) error {
	var draft AssignmentDraft
	if err := ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignFulfilmentCommand(
		draft.StoreID,
		draft.ProductID,
		draft.WarehouseBusinessUnit,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	assignment, err := s.assignFulfilmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Assignment{
		ID:                    assignment.ID(),
		StoreID:               assignment.StoreID(),
		ProductID:             assignment.ProductID(),
		WarehouseBusinessUnit: assignment.WarehouseBusinessUnit(),
	})
}

// GetStores handles GET /api/v1/stores - retrieves all stores.
func (s *Server) GetStores(ctx echo.Context) error {
	query := queries.NewGetAllStoresQuery()

	stores, err := s.getAllStoresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Store, len(stores))
	for i, st := range stores {
		response[i] = Store{
			ID:                      st.ID,
			Name:                    st.Name,
			QuantityProductsInStock: st.QuantityProductsInStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStore handles POST /api/v1/stores - registers a new store.
func (s *Server) CreateStore(ctx echo.Context) error {
	var draft StoreDraft
	if err := ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateStoreCommand(draft.Name, draft.QuantityProductsInStock)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createStoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Store{
		ID:                      created.ID(),
		Name:                    created.Name(),
		QuantityProductsInStock: created.QuantityProductsInStock(),
	})
}

// UpdateStore handles PUT /api/v1/stores/:storeId - updates a store.
func (s *Server) UpdateStore(ctx echo.Context) error {
	storeID, err := uuid.Parse(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store ID")
	}

	var draft StoreDraft
	if err = ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStoreCommand(storeID, draft.Name, draft.QuantityProductsInStock)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateStoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Store{
		ID:                      updated.ID(),
		Name:                    updated.Name(),
		QuantityProductsInStock: updated.QuantityProductsInStock(),
	})
}

// GetProducts handles GET /api/v1/products - retrieves all product types.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Stock:       p.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - registers a new product
// type.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var draft ProductDraft
	if err := ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(draft.Name, draft.Description, draft.Stock)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Product{
		ID:          created.ID(),
		Name:        created.Name(),
		Description: created.Description(),
		Stock:       created.Stock(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
