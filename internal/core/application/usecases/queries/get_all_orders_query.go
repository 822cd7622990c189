// Package queries contains read-only operations that bypass the domain
// repositories and read the database directly. Queries never lock rows and
// never mutate state; soft-deleted records are filtered out at the SQL
// level.
package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves all live orders with their cached totals.
// Soft-deleted orders are excluded; line items are not loaded.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve the order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is one row of the order list. Totals come straight
// from the cached columns, not from a per-request aggregation.
type OrderSummaryResponse struct {
	ID          uint64
	OrderNumber string
	Date        time.Time
	Status      order.Status
	NumProducts int
	FinalPrice  kernel.Price
}
