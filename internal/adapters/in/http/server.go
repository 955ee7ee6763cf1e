// Package http is the inbound REST adapter. It translates HTTP requests into
// commands and queries and maps domain errors onto status codes.
package http

import (
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// dateLayout is the calendar-date format accepted by the listing filters.
const dateLayout = "2006-01-02"

// Server handles the order lifecycle REST API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	addItemHandler      commands.AddItemCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	calculateTotalHandler      queries.CalculateOrderTotalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	calculateTotalHandler queries.CalculateOrderTotalQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addItemHandler:             addItemHandler,
		confirmOrderHandler:        confirmOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		calculateTotalHandler:      calculateTotalHandler,
	}
}

// RegisterRoutes attaches all order lifecycle endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/total", s.CalculateTotal)
	api.GET("/orders/:orderId", s.GetOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/items", s.AddItem)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PUT("/orders/:orderId/status", s.UpdateStatus)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)
	api.GET("/restaurants/:restaurantId/orders", s.GetRestaurantOrders)
}

// CreateOrder handles POST /api/v1/orders - opens a new empty order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer id: "+err.Error())
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, restaurantID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// AddItem handles POST /api/v1/orders/:orderId/items - attaches a line item.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(orderID, productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(confirmed))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(cancelled))
}

// UpdateStatus handles PUT /api/v1/orders/:orderId/status - administrative
// status override.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes the record
// regardless of its status.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId - fetches one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(*model))
}

// ListOrders handles GET /api/v1/orders - lists orders with optional status,
// dateFrom and dateTo filters (calendar dates).
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	dateFrom, err := parseDateParam(ctx.QueryParam("dateFrom"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dateFrom: "+err.Error())
	}

	dateTo, err := parseDateParam(ctx.QueryParam("dateTo"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dateTo: "+err.Error())
	}

	query, err := queries.NewListOrdersQuery(status, dateFrom, dateTo)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModels(orders))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
// The withItems query flag loads line items eagerly.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer id: "+err.Error())
	}

	withItems := ctx.QueryParam("withItems") == "true"

	query, err := queries.NewGetCustomerOrdersQuery(customerID, withItems)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModels(orders))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/:restaurantId/orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModels(orders))
}

// CalculateTotal handles POST /api/v1/orders/total - prices a candidate item
// list against current catalog prices without creating an order.
func (s *Server) CalculateTotal(ctx echo.Context) error {
	var req CalculateTotalRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	candidates := make([]queries.CandidateItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return respondBadRequest(ctx, "Invalid product id: "+err.Error())
		}
		candidates = append(candidates, queries.CandidateItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	query, err := queries.NewCalculateOrderTotalQuery(candidates)
	if err != nil {
		return respondError(ctx, err)
	}

	total, err := s.calculateTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CalculateTotalResponse{Total: total.String()})
}

// parseDateParam parses an optional calendar-date query parameter.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
