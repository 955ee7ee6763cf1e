package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrPlacedAtIsRequired is returned when an order is constructed without a placement timestamp.
	ErrPlacedAtIsRequired = errs.NewValueIsRequiredError("placedAt")
)

// Order represents a customer's purchase request in the system. It is the aggregate
// root that manages the order lifecycle from creation through confirmation to
// delivery or cancellation.
//
// Order maintains these invariants:
//   - Must have valid order, customer, and restaurant identifiers
//   - The item list is never nil and is exclusively owned by the order
//   - The total value always equals the sum of line-item subtotals; it is
//     recomputed from the item list on every mutation and never set directly
//   - The placement timestamp is set once at creation and immutable thereafter
//   - Terminal orders (Delivered, Cancelled) reject item mutation and confirmation
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the external customer who placed the order
	customerID kernel.UUID

	// restaurantID references the restaurant fulfilling the order
	restaurantID kernel.UUID

	// items holds the line items in insertion order
	items []LineItem

	// status represents the current state in the order lifecycle
	status Status

	// totalValue is the sum of line-item subtotals
	totalValue kernel.Money

	// placedAt is the creation timestamp, immutable after construction
	placedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in Created
// status with an empty item list and a zero total.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the ordering customer
//   - restaurantID: Identifier of the fulfilling restaurant
//   - placedAt: Placement timestamp (must be non-zero; set once, immutable)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id, customerID, restaurantID kernel.UUID, placedAt time.Time) (*Order, error) {
	order := &Order{
		status:        Created,
		items:         make([]LineItem, 0),
		totalValue:    kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// The stored total is intentionally not accepted as a parameter: the total is
// recomputed from the item list so the sum invariant holds even if the stored
// column went stale.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	items []LineItem,
	status Status,
	placedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, restaurantID, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	order.items = append(order.items, items...)
	order.status = status
	order.totalValue = ComputeTotal(order.items)
	return order, nil
}

// ComputeTotal returns the sum of line-item subtotals.
// A nil or empty item list yields zero. The function is pure and is used
// both by the aggregate after mutations and by pricing-preview callers.
func ComputeTotal(items []LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Validate ensures the Order instance was properly constructed through a
// constructor. Returns ErrOrderIsNotConstructed otherwise.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the fulfilling restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order's line items in insertion order.
// The order exclusively owns its items; callers cannot mutate the
// aggregate's internal state through the returned slice.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalValue returns the sum of line-item subtotals.
func (o *Order) TotalValue() kernel.Money {
	return o.totalValue
}

// PlacedAt returns the placement timestamp set at creation.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// AddItem appends a line item snapshotting the given unit price and recomputes
// the order total from the full item list.
//
// This method enforces the following business rules:
//   - The order must not be in a terminal status
//   - The quantity must be positive and the unit price valid (via NewLineItem)
//
// The total is not adjusted incrementally: it is recomputed as the sum over
// all items, so the invariant holds even if a prior computation was stale.
func (o *Order) AddItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot add items to a %s order", o.status), o.id.String())
	}

	item, err := NewLineItem(o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.totalValue = ComputeTotal(o.items)
	return nil
}

// Confirm sets the status to Confirmed.
//
// Confirmation carries no precondition on the prior status beyond the order
// not being terminal; confirming an already confirmed order is a no-op
// transition to the same status.
func (o *Order) Confirm() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot confirm a %s order", o.status), o.id.String())
	}

	o.status = Confirmed
	return nil
}

// ChangeStatus assigns a new status without transition-table enforcement.
//
// This is the administrative override path used by status-change tooling;
// only the status value itself is validated. Enforcement of legal
// transitions is exclusively carried by Cancel.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled.
//
// This method enforces the following business rules:
//   - A delivered order cannot be cancelled
//   - An already cancelled order cannot be cancelled again
//
// On success the status is set to Cancelled before the aggregate is handed
// back for persistence, so the stored record always reflects the transition.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel(o.id)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customer: %w", err)
	}
	o.customerID = customerID
	return nil
}

// setRestaurantID validates and sets the restaurant reference.
// This is a private method used only during construction.
func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return fmt.Errorf("restaurant: %w", err)
	}
	o.restaurantID = restaurantID
	return nil
}

// setPlacedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return ErrPlacedAtIsRequired
	}
	o.placedAt = placedAt
	return nil
}
