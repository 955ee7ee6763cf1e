// Package product provides the catalog read model consumed by the order
// lifecycle. Products are owned by an external catalog; this package only
// models what the ordering core needs: identity, display name, current price,
// and availability.
package product

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructors")

// maxPrice is the catalog's upper bound for a unit price.
const maxPrice = "99999.99"

// Product is a read-only snapshot of a catalog entry.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - The price is positive and does not exceed 99999.99
//   - Availability reflects whether the product is currently orderable
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name shown on line items and receipts
	name string

	// price is the current catalog price, snapshotted onto line items at add time
	price kernel.Money

	// isAvailable reports whether the product can currently be ordered
	isAvailable bool

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a Product with validation. New catalog entries are
// available by default.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	product := &Product{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// availability flag.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, isAvailable bool) (*Product, error) {
	product, err := NewProduct(id, name, price)
	if err != nil {
		return nil, err
	}

	product.isAvailable = isAvailable
	return product, nil
}

// Validate ensures the Product instance was properly constructed through a
// constructor. Returns ErrProductIsNotConstructed otherwise.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the product's display name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setPrice validates and sets the product's price.
// The price must be positive and not exceed the catalog bound.
// This is a private method used only during construction.
func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price must be greater than 0"))
	}

	upperBound, err := kernel.MoneyFromString(maxPrice)
	if err != nil {
		return err
	}
	if price.GreaterThan(upperBound) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", maxPrice)
	}

	p.price = price
	return nil
}
