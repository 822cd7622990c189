package ports

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
// "Active" means the soft-delete flag is false; soft-deleted products are
// excluded from every lookup.
type ProductRepository interface {
	// Add persists a new product and assigns its store-generated identity.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including the
	// soft-delete flag.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves an active product by id. Returns not-found for absent
	// or soft-deleted products.
	Get(ctx context.Context, id uint64) (*product.Product, error)
}
