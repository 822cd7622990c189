package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product by id.
type GetProductQuery struct {
	productID uint64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product by id.
func NewGetProductQuery(productID uint64) (GetProductQuery, error) {
	if productID == 0 {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productID")
	}

	return GetProductQuery{
		productID: productID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductQuery) ProductID() uint64 {
	return q.productID
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}
