package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CalculateOrderTotalQueryHandler prices candidate item lists.
//
// Unlike the other query handlers it does not read the order store at all:
// every product is resolved through the catalog port and priced at its
// current catalog price. Nothing is persisted.
type CalculateOrderTotalQueryHandler struct {
	catalog ports.ProductCatalog
}

// NewCalculateOrderTotalQueryHandler creates a handler for pricing previews.
func NewCalculateOrderTotalQueryHandler(catalog ports.ProductCatalog) CalculateOrderTotalQueryHandler {
	return CalculateOrderTotalQueryHandler{catalog: catalog}
}

// Handle resolves each candidate product, rejects unavailable ones, and
// returns the sum of price times quantity. An empty list prices to zero.
func (h CalculateOrderTotalQueryHandler) Handle(
	ctx context.Context,
	query CalculateOrderTotalQuery,
) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := kernel.ZeroMoney()
	for _, item := range query.Items() {
		catalogProduct, err := h.catalog.Get(ctx, item.ProductID)
		if err != nil {
			return kernel.Money{}, err
		}

		if !catalogProduct.IsAvailable() {
			return kernel.Money{}, errs.NewObjectUnavailableError("product", item.ProductID.String())
		}

		total = total.Add(catalogProduct.Price().MulInt(item.Quantity))
	}

	return total, nil
}
