package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places every Price carries.
// Matches the currency granularity of the catalog: numeric(10,2) columns.
const PriceScale = 2

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via NewPrice, NewPriceFromString
// or ZeroPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice, NewPriceFromString or ZeroPrice constructors")

// Price is an immutable fixed-point monetary amount with two decimal
// places. The zero value is invalid and fails validation - use the
// constructors to create instances.
//
// Amounts are non-negative: the catalog has no negative unit prices and
// derived totals are sums of non-negative line totals. Construction rounds
// half-up to two places, so arithmetic on prices never accumulates
// sub-cent residue.
//
// Example:
//
//	p, err := kernel.NewPriceFromString("10.005")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(p) // Output: 10.01
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount, rounding half-up to two
// decimal places. Returns an error if the amount is negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}

	return Price{
		amount: amount.Round(PriceScale),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewPriceFromString parses a decimal string ("10.00") into a Price.
// Returns an error if the string is not a valid decimal or is negative.
func NewPriceFromString(value string) (Price, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(amount)
}

// ZeroPrice creates the zero amount (0.00). Used for the totals of a fresh
// order and as the seed of summations.
func ZeroPrice() Price {
	return Price{
		amount: decimal.Zero.Round(PriceScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Price was created through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the underlying decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{
		amount: p.amount.Add(other.amount).Round(PriceScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// MultiplyByQuantity returns the price multiplied by an integer quantity.
// This is the line-total computation: unit price snapshot times quantity.
func (p Price) MultiplyByQuantity(quantity int) Price {
	return Price{
		amount: p.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(PriceScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// IsZero reports whether the price is 0.00.
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// String renders the price with exactly two decimal places ("10.00").
// Implements fmt.Stringer.
func (p Price) String() string {
	return p.amount.StringFixed(PriceScale)
}
