package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// AddItemCommandHandler attaches line items to orders.
//
// The handler resolves the product through the catalog, rejects unavailable
// products, snapshots the current price onto the new item, and lets the
// aggregate recompute its total from the full item list before persisting.
// The order row stays locked for the duration of the transaction, so
// concurrent additions to the same order cannot lose updates.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
}

// NewAddItemCommandHandler creates a handler for item addition operations.
// Requires an OrderUoWFactory for transactional persistence and a
// ProductCatalog for price and availability lookups.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory, catalog ports.ProductCatalog) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the item addition command and returns the updated order.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	catalogProduct, err := h.catalog.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if !catalogProduct.IsAvailable() {
		return nil, errs.NewObjectUnavailableError("product", cmd.ProductID().String())
	}

	if err = aggregate.AddItem(catalogProduct.ID(), cmd.Quantity(), catalogProduct.Price()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
