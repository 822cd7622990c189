package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetTotalsDriftQueryIsNotConstructed = errors.New(
	"GetTotalsDriftQuery must be created via NewGetTotalsDriftQuery constructor",
)

// GetTotalsDriftQuery finds orders whose cached totals no longer match the
// sum of their line items. A non-empty result means a write path skipped
// the recalculation; the query reports, it never repairs.
type GetTotalsDriftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTotalsDriftQuery creates a totals consistency check query.
func NewGetTotalsDriftQuery() GetTotalsDriftQuery {
	return GetTotalsDriftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTotalsDriftQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalsDriftQueryIsNotConstructed)
}

// TotalsDriftResponse reports one order with mismatched totals, cached
// values next to the actual sums.
type TotalsDriftResponse struct {
	OrderID           uint64
	CachedNumProducts int
	ActualNumProducts int
	CachedFinalPrice  kernel.Price
	ActualFinalPrice  kernel.Price
}
