// Package queries contains read-only operations over the order history.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain repositories and read projections straight from the database.
package queries

import (
	"context"
	"database/sql"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemResponse represents a single line item in an order read model.
// UnitPrice is the catalog price snapshotted when the item was added.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderResponse represents order information for read operations.
// Items is populated only by the queries that load line items eagerly.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Status       order.Status
	TotalValue   decimal.Decimal
	PlacedAt     time.Time
	Items        []OrderItemResponse
}

// orderColumns is the projection shared by every order listing query.
const orderColumns = `id, customer_id, restaurant_id, status, total_value, placed_at`

// scanOrderRows converts raw order rows into read models.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, customerID, restaurantID uuid.UUID
		var status int

		err := rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&status,
			&resp.TotalValue,
			&resp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		restID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RestaurantID = restID

		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads line items for the given orders in one query and groups
// them onto their owners in insertion order.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = i
		ids = append(ids, orders[i].ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var orderID, productID uuid.UUID

		if err = rows.Scan(&orderID, &productID, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}

		productUUID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		item.ProductID = productUUID
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		if i, ok := index[ownerID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
