package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductCatalog is the read-only source of truth for product price,
// name, and availability. The ordering core never writes to it.
type ProductCatalog interface {
	// Get retrieves the catalog entry for a product.
	// Returns an ObjectNotFoundError if the product does not exist.
	Get(ctx context.Context, productID kernel.UUID) (*product.Product, error)
}
