package order

import (
	"orders/internal/core/domain/model/kernel"
)

// Totals is the denormalized summary of an order: the number of units
// across all live line items and the final price. Both values are outputs
// of CalculateTotals only - nothing else ever writes them.
type Totals struct {
	// NumProducts is the sum of quantities over live items
	NumProducts int
	// FinalPrice is the sum of line totals over live items
	FinalPrice kernel.Price
}

// ZeroTotals returns the totals of an order with no items: (0, 0.00).
func ZeroTotals() Totals {
	return Totals{
		NumProducts: 0,
		FinalPrice:  kernel.ZeroPrice(),
	}
}

// CalculateTotals recomputes an order's cached summary from its current
// line items. Pure and deterministic: given the same items it always
// produces the same totals, using exact fixed-point arithmetic.
//
// The Order aggregate invokes it after every item mutation, inside the same
// transaction, so cached totals are never observably stale relative to the
// persisted items.
func CalculateTotals(items []*Item) Totals {
	totals := ZeroTotals()
	for _, item := range items {
		totals.NumProducts += item.Quantity()
		totals.FinalPrice = totals.FinalPrice.Add(item.TotalPrice())
	}
	return totals
}
