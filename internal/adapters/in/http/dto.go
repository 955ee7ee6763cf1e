package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

// ErrorResponse is the JSON error envelope returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
}

// AddItemRequest is the body of POST /api/v1/orders/:orderId/items.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateStatusRequest is the body of PUT /api/v1/orders/:orderId/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CandidateItemRequest is one entry of a pricing preview request.
type CandidateItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CalculateTotalRequest is the body of POST /api/v1/orders/total.
type CalculateTotalRequest struct {
	Items []CandidateItemRequest `json:"items"`
}

// CalculateTotalResponse carries the priced preview total.
type CalculateTotalResponse struct {
	Total string `json:"total"`
}

// OrderItemResponse is a line item in an order payload.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// OrderResponse is the order payload shared by command and query endpoints.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	RestaurantID string              `json:"restaurantId"`
	Status       string              `json:"status"`
	TotalValue   string              `json:"totalValue"`
	PlacedAt     time.Time           `json:"placedAt"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// fromAggregate builds an order payload from a domain aggregate.
func fromAggregate(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Subtotal:  item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
		TotalValue:   aggregate.TotalValue().String(),
		PlacedAt:     aggregate.PlacedAt(),
		Items:        itemResponses,
	}
}

// fromReadModel builds an order payload from a query read model.
func fromReadModel(model queries.OrderResponse) OrderResponse {
	itemResponses := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		})
	}

	return OrderResponse{
		ID:           model.ID.String(),
		CustomerID:   model.CustomerID.String(),
		RestaurantID: model.RestaurantID.String(),
		Status:       model.Status.String(),
		TotalValue:   model.TotalValue.String(),
		PlacedAt:     model.PlacedAt,
		Items:        itemResponses,
	}
}

// fromReadModels converts a list of read models.
func fromReadModels(models []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, 0, len(models))
	for _, model := range models {
		responses = append(responses, fromReadModel(model))
	}
	return responses
}
