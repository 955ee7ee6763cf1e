package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product entry within an order. It is a value object owned
// exclusively by its Order; the order identifier is a back-reference only.
//
// The unit price is a snapshot of the catalog price taken when the item was
// added. Later price changes on the product do not affect existing line
// items, and the snapshot is immutable after construction.
type LineItem struct { //nolint:recvcheck //using for validation
	// orderID is the owning order (back-reference only)
	orderID kernel.UUID

	// productID references the external product
	productID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the product price captured at add time
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for an order with validation.
// The quantity must be a positive integer and the unit price a properly
// constructed Money value.
func NewLineItem(orderID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
// Returns ErrLineItemIsNotConstructed for zero-value instances.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (i LineItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the referenced product.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken when the item was added.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unit price multiplied by quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *LineItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
