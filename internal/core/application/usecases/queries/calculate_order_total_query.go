package queries

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCalculateOrderTotalQueryIsNotConstructed = errors.New(
	"CalculateOrderTotalQuery must be created via NewCalculateOrderTotalQuery constructor",
)

// CandidateItem is a product/quantity pair in a pricing preview request.
type CandidateItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CalculateOrderTotalQuery prices a candidate item list against current
// catalog prices without creating or touching any order.
type CalculateOrderTotalQuery struct {
	items []CandidateItem

	guard guard.ConstructorGuard
}

// NewCalculateOrderTotalQuery creates a pricing preview query.
// Every candidate needs a valid product identifier and a positive quantity;
// an empty list is allowed and prices to zero.
func NewCalculateOrderTotalQuery(items []CandidateItem) (CalculateOrderTotalQuery, error) {
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return CalculateOrderTotalQuery{}, fmt.Errorf("product: %w", err)
		}
		if item.Quantity <= 0 {
			return CalculateOrderTotalQuery{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	query := CalculateOrderTotalQuery{
		items: make([]CandidateItem, len(items)),
		guard: guard.NewConstructorGuard(),
	}
	copy(query.items, items)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateOrderTotalQuery) Validate() error {
	return q.guard.Validate(ErrCalculateOrderTotalQueryIsNotConstructed)
}

// Items returns a copy of the candidate items.
func (q CalculateOrderTotalQuery) Items() []CandidateItem {
	items := make([]CandidateItem, len(q.items))
	copy(items, q.items)
	return items
}
