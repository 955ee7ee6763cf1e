// Package ports defines repository and collaborator interfaces for the ordering core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Aggregates returned by lookup methods always carry their line items;
// listing methods come in a plain and an eager-items form mirroring the
// read API of the order history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// replacing its line items and recomputed total.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate while holding a row lock
	// until the surrounding unit of work commits or rolls back. Mutating
	// operations use it so read-modify-persist sequences on the same order
	// are serialized; it must only be called inside a unit of work.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by a customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByCustomerWithItems retrieves all orders placed by a customer
	// with line items loaded eagerly. Mirrors the history read API; adapters
	// that always load items may serve both methods identically.
	GetByCustomerWithItems(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByRestaurant retrieves all orders fulfilled by a restaurant.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetByStatus retrieves all orders currently in the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByPeriod retrieves all orders placed within [from, to] inclusive.
	GetByPeriod(ctx context.Context, from, to time.Time) ([]*order.Order, error)

	// GetByStatusAndPeriod retrieves all orders matching both the status
	// and the placement period (AND semantics).
	GetByStatusAndPeriod(ctx context.Context, status order.Status, from, to time.Time) ([]*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order record unconditionally.
	// Business-rule checks do not apply to the administrative delete path.
	Delete(ctx context.Context, aggregate *order.Order) error
}
