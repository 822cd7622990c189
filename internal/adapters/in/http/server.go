// Package http exposes the order and catalog use cases over a REST API.
// Handlers translate between the wire representation and commands/queries;
// all business rules stay behind the application layer.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	addOrderItemHandler       commands.AddOrderItemCommandHandler
	changeItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler
	removeOrderItemHandler    commands.RemoveOrderItemCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	updateProductHandler      commands.UpdateProductCommandHandler
	deleteProductHandler      commands.DeleteProductCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getAllProductsHandler queries.GetAllProductsQueryHandler
	getProductHandler     queries.GetProductQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	changeItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		addOrderItemHandler:       addOrderItemHandler,
		changeItemQuantityHandler: changeItemQuantityHandler,
		removeOrderItemHandler:    removeOrderItemHandler,
		createProductHandler:      createProductHandler,
		updateProductHandler:      updateProductHandler,
		deleteProductHandler:      deleteProductHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getAllProductsHandler:     getAllProductsHandler,
		getProductHandler:         getProductHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PUT("/orders/:orderID", s.UpdateOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.POST("/orders/:orderID/items", s.AddOrderItem)
	api.PUT("/orders/:orderID/items/:itemID", s.ChangeOrderItemQuantity)
	api.DELETE("/orders/:orderID/items/:itemID", s.RemoveOrderItem)
	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:productID", s.GetProduct)
	api.PUT("/products/:productID", s.UpdateProduct)
	api.DELETE("/products/:productID", s.DeleteProduct)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - retrieves all active orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, row := range orders {
		response[i] = orderQueryToSummary(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderQueryToDetails(details))
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderNumber, time.Time{})
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToSummary(created))
}

// UpdateOrder handles PUT /api/v1/orders/:orderID - partial order update.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.StatusFromString(*req.Status)
		if parseErr != nil {
			return s.badRequest(ctx, "Invalid status: "+*req.Status)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.OrderNumber, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToSummary(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID - soft delete.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:orderID/items - adds a product
// to the order, merging with an existing line for the same product.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var req AddOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, req.ProductID, req.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToDetails(updated))
}

// ChangeOrderItemQuantity handles PUT /api/v1/orders/:orderID/items/:itemID.
func (s *Server) ChangeOrderItemQuantity(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathID(ctx, "itemID")
	if err != nil {
		return s.badRequest(ctx, "Invalid item id")
	}

	var req ChangeItemQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderItemQuantityCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToDetails(updated))
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderID/items/:itemID.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathID(ctx, "itemID")
	if err != nil {
		return s.badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if _, err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - retrieves the live catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, row := range products {
		response[i] = productQueryToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:productID.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := pathID(ctx, "productID")
	if err != nil {
		return s.badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	row, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productQueryToResponse(row))
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	unitPrice, err := kernel.NewPriceFromString(req.UnitPrice)
	if err != nil {
		return s.badRequest(ctx, "Invalid unit price: "+req.UnitPrice)
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, unitPrice)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(created))
}

// UpdateProduct handles PUT /api/v1/products/:productID. Existing order
// lines keep their price snapshots; only the catalog entry changes.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathID(ctx, "productID")
	if err != nil {
		return s.badRequest(ctx, "Invalid product id")
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var name *string
	if req.Name != "" {
		name = &req.Name
	}

	var unitPrice *kernel.Price
	if req.UnitPrice != "" {
		parsed, parseErr := kernel.NewPriceFromString(req.UnitPrice)
		if parseErr != nil {
			return s.badRequest(ctx, "Invalid unit price: "+req.UnitPrice)
		}
		unitPrice = &parsed
	}

	cmd, err := commands.NewUpdateProductCommand(productID, name, unitPrice)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:productID - soft delete.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathID(ctx, "productID")
	if err != nil {
		return s.badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(ctx.Param(name), 10, 64)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application and domain errors to HTTP statuses.
// Deletion hides an order completely, so a deleted order reads as 404
// even when it is also completed.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, commands.ErrProductNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrOrderIsLocked):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderNumberIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
