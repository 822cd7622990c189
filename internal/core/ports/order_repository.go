package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads exclude soft-deleted orders; a soft-deleted order is reported
// as not found, exactly like an absent one.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store-generated
	// identity (and the identities of any items).
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: order fields,
	// cached totals, new/changed item rows, and deletion of removed item
	// rows - all within the ambient transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an active order with its line items. Inside a unit of
	// work the order row is locked until commit, serializing concurrent
	// mutations of the same order.
	Get(ctx context.Context, id uint64) (*order.Order, error)
}
